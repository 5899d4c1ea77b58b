package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type LoanRM struct {
	ID           uuid.UUID
	BookID       uuid.UUID
	UserID       uuid.UUID
	BookTitle    string
	BookAuthor   string
	BookGenre    string
	BookImageURL string
	UserName     string
	UserEmail    string
	BorrowedAt   time.Time
	DueAt        time.Time
	ReturnedAt   *time.Time
	Status       string
}
