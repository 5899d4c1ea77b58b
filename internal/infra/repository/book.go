package repository

import (
	"context"
	"errors"

	"bookhaven/internal/domain/book"
	"bookhaven/internal/infra"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookRepository struct {
	db DB
}

func NewBookRepository(db DB) *BookRepository {
	return &BookRepository{db: db}
}

const bookColumns = `id, title, author, genre, description, rating, image_url, quantity, created_at, updated_at`

func (r *BookRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)

	rm, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book by ID", err)
	}
	return rm, nil
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*readmodel.BookRM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookColumns+` FROM books ORDER BY title ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *BookRepository) FindByGenre(ctx context.Context, genre string) ([]*readmodel.BookRM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookColumns+` FROM books WHERE genre = $1 ORDER BY title ASC`, genre)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books by genre", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *BookRepository) ListGenres(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT genre FROM books ORDER BY genre ASC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list genres", err)
	}
	defer rows.Close()

	var genres []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, infra.WrapRepoErr("failed to scan genre", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read genres", err)
	}
	return genres, nil
}

func (r *BookRepository) Create(ctx context.Context, b *book.Book) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO books (id, title, author, genre, description, rating, image_url, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID(), b.Title(), b.Author(), b.Genre(), b.Description(), b.Rating(), b.ImageURL(), b.Quantity(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create book", err, infra.ClassifyPgError(err))
	}
	return b.ID(), nil
}

func (r *BookRepository) Update(ctx context.Context, b *book.Book) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE books
		SET title = $2, author = $3, genre = $4, description = $5, rating = $6, image_url = $7, updated_at = now()
		WHERE id = $1`,
		b.ID(), b.Title(), b.Author(), b.Genre(), b.Description(), b.Rating(), b.ImageURL(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update book", err, infra.ClassifyPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("book not found", nil, infra.KindNotFound)
	}
	return nil
}

// TryDecrementQuantity atomically takes one copy off the shelf and
// returns the quantity after the decrement. The quantity > 0 guard and
// the decrement execute as a single statement, so two callers racing for
// the last copy can never both succeed.
func (r *BookRepository) TryDecrementQuantity(ctx context.Context, id uuid.UUID) (int32, error) {
	var remaining int32
	err := r.db.QueryRow(ctx, `
		UPDATE books
		SET quantity = quantity - 1, updated_at = now()
		WHERE id = $1 AND quantity > 0
		RETURNING quantity`,
		id,
	).Scan(&remaining)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, infra.WrapRepoErr("failed to decrement book quantity", err)
	}

	// No row matched: distinguish a missing book from an exhausted one.
	var exists bool
	if checkErr := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, id).Scan(&exists); checkErr != nil {
		return 0, infra.WrapRepoErr("failed to check book existence", checkErr)
	}
	if !exists {
		return 0, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
	}
	return 0, infra.WrapRepoErr("book out of stock", err, infra.KindPreconditionFailed)
}

// IncrementQuantity puts one copy back. No upper cap is enforced here;
// capping stock is a catalog-management concern.
func (r *BookRepository) IncrementQuantity(ctx context.Context, id uuid.UUID) (int32, error) {
	var quantity int32
	err := r.db.QueryRow(ctx, `
		UPDATE books
		SET quantity = quantity + 1, updated_at = now()
		WHERE id = $1
		RETURNING quantity`,
		id,
	).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to increment book quantity", err)
	}
	return quantity, nil
}

func scanBook(row pgx.Row) (*readmodel.BookRM, error) {
	var rm readmodel.BookRM
	err := row.Scan(
		&rm.ID, &rm.Title, &rm.Author, &rm.Genre, &rm.Description,
		&rm.Rating, &rm.ImageURL, &rm.Quantity, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func collectBooks(rows pgx.Rows) ([]*readmodel.BookRM, error) {
	books := make([]*readmodel.BookRM, 0)
	for rows.Next() {
		rm, err := scanBook(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan book", err)
		}
		books = append(books, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read books", err)
	}
	return books, nil
}
