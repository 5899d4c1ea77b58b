package usecase

import (
	"context"
	"errors"

	"bookhaven/internal/domain/book"
	"bookhaven/internal/infra"
	"bookhaven/internal/pkg/errs"
	"bookhaven/internal/pkg/patch"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrDuplicateBook = errors.New("book already exists")
	ErrInvalidBook   = errors.New("invalid book data")
)

type BookCatalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookRM, error)
	FindAll(ctx context.Context) ([]*readmodel.BookRM, error)
	FindByGenre(ctx context.Context, genre string) ([]*readmodel.BookRM, error)
	ListGenres(ctx context.Context) ([]string, error)
	Create(ctx context.Context, b *book.Book) (uuid.UUID, error)
	Update(ctx context.Context, b *book.Book) error
}

type CreateBookParams struct {
	Title       string
	Author      string
	Genre       string
	Description string
	Rating      float64
	ImageURL    string
	Quantity    int32
}

type UpdateBookParams struct {
	Title       *string
	Author      *string
	Genre       *string
	Description *string
	Rating      *float64
	ImageURL    *string
}

type CatalogUseCase interface {
	GetBook(ctx context.Context, id uuid.UUID) (*readmodel.BookRM, error)
	ListBooks(ctx context.Context) ([]*readmodel.BookRM, error)
	ListBooksByGenre(ctx context.Context, genre string) ([]*readmodel.BookRM, error)
	ListGenres(ctx context.Context) ([]string, error)
	CreateBook(ctx context.Context, params CreateBookParams) (uuid.UUID, error)
	UpdateBook(ctx context.Context, id uuid.UUID, params UpdateBookParams) (*readmodel.BookRM, error)
}

type catalogUseCaseImpl struct {
	catalog BookCatalog
}

func NewCatalogUseCase(catalog BookCatalog) CatalogUseCase {
	return &catalogUseCaseImpl{catalog: catalog}
}

func (c *catalogUseCaseImpl) GetBook(ctx context.Context, id uuid.UUID) (*readmodel.BookRM, error) {
	bookRM, err := c.catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}
	return bookRM, nil
}

func (c *catalogUseCaseImpl) ListBooks(ctx context.Context) ([]*readmodel.BookRM, error) {
	books, err := c.catalog.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list books")
	}
	return books, nil
}

func (c *catalogUseCaseImpl) ListBooksByGenre(ctx context.Context, genre string) ([]*readmodel.BookRM, error) {
	books, err := c.catalog.FindByGenre(ctx, genre)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list books by genre")
	}
	return books, nil
}

func (c *catalogUseCaseImpl) ListGenres(ctx context.Context) ([]string, error) {
	genres, err := c.catalog.ListGenres(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list genres")
	}
	return genres, nil
}

func (c *catalogUseCaseImpl) CreateBook(ctx context.Context, params CreateBookParams) (uuid.UUID, error) {
	bookEntity, err := book.NewBook(
		uuid.Nil,
		params.Title, params.Author, params.Genre, params.Description,
		params.Rating, params.ImageURL, params.Quantity,
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidBook)
	}

	id, err := c.catalog.Create(ctx, bookEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrDuplicateBook
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

// UpdateBook edits catalog fields only. Quantity is deliberately not
// editable here: it belongs to the lending operations, which are the
// sole writers of that column.
func (c *catalogUseCaseImpl) UpdateBook(ctx context.Context, id uuid.UUID, params UpdateBookParams) (*readmodel.BookRM, error) {
	current, err := c.catalog.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Wrap(err, "failed to find book")
	}

	bookEntity, err := book.NewBook(
		current.ID,
		patch.Coalesce(params.Title, current.Title),
		patch.Coalesce(params.Author, current.Author),
		patch.Coalesce(params.Genre, current.Genre),
		patch.Coalesce(params.Description, current.Description),
		patch.Coalesce(params.Rating, current.Rating),
		patch.Coalesce(params.ImageURL, current.ImageURL),
		current.Quantity,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBook)
	}

	if err := c.catalog.Update(ctx, bookEntity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.catalog.FindByID(ctx, id)
}
