package book

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("title must not be empty")
	ErrEmptyAuthor      = errors.New("author must not be empty")
	ErrEmptyGenre       = errors.New("genre must not be empty")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
	ErrNegativeQuantity = errors.New("quantity must not be negative")
)

// Book is a catalog record. Quantity counts the copies currently on the
// shelf; it is mutated only through the lending operations, one copy at
// a time, and must never be observed negative.
type Book struct {
	id          uuid.UUID
	title       string
	author      string
	genre       string
	description string
	rating      float64
	imageURL    string
	quantity    int32
}

func NewBook(id uuid.UUID, title, author, genre, description string, rating float64, imageURL string, quantity int32) (*Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	author = strings.TrimSpace(author)
	if author == "" {
		return nil, ErrEmptyAuthor
	}
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, ErrEmptyGenre
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Book{
		id:          id,
		title:       title,
		author:      author,
		genre:       genre,
		description: strings.TrimSpace(description),
		rating:      rating,
		imageURL:    strings.TrimSpace(imageURL),
		quantity:    quantity,
	}, nil
}

func (b *Book) ID() uuid.UUID       { return b.id }
func (b *Book) Title() string       { return b.title }
func (b *Book) Author() string      { return b.author }
func (b *Book) Genre() string       { return b.genre }
func (b *Book) Description() string { return b.description }
func (b *Book) Rating() float64     { return b.rating }
func (b *Book) ImageURL() string    { return b.imageURL }
func (b *Book) Quantity() int32     { return b.quantity }
