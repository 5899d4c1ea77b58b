//go:build unit || e2e

package builder

import (
	"time"

	dombook "bookhaven/internal/domain/book"
	reqdto "bookhaven/internal/handler/dto/request"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookBuilder struct {
	ID          uuid.UUID
	Title       string
	Author      string
	Genre       string
	Description string
	Rating      float64
	ImageURL    string
	Quantity    int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewBookBuilder() *BookBuilder {
	now := time.Now()
	return &BookBuilder{
		ID:          uuid.New(),
		Title:       "The Go Programming Language",
		Author:      "Alan Donovan",
		Genre:       "Programming",
		Description: "A comprehensive introduction",
		Rating:      4.5,
		ImageURL:    "https://example.com/gopl.jpg",
		Quantity:    3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *BookBuilder) With(mutate func(*BookBuilder)) *BookBuilder {
	mutate(b)
	return b
}

func (b *BookBuilder) BuildDomain() (*dombook.Book, error) {
	return dombook.NewBook(b.ID, b.Title, b.Author, b.Genre, b.Description, b.Rating, b.ImageURL, b.Quantity)
}

func (b *BookBuilder) BuildReadModel() *readmodel.BookRM {
	return &readmodel.BookRM{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
		Rating:      b.Rating,
		ImageURL:    b.ImageURL,
		Quantity:    b.Quantity,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *BookBuilder) BuildCreateRequestDTO() reqdto.CreateBookRequest {
	return reqdto.CreateBookRequest{
		Title:       b.Title,
		Author:      b.Author,
		Genre:       b.Genre,
		Description: b.Description,
		Rating:      b.Rating,
		Image:       b.ImageURL,
		Quantity:    b.Quantity,
	}
}

func (b *BookBuilder) BuildUpdateRequestDTO() reqdto.UpdateBookRequest {
	title := b.Title
	rating := b.Rating
	return reqdto.UpdateBookRequest{
		Title:  &title,
		Rating: &rating,
	}
}
