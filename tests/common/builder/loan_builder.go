//go:build unit || e2e

package builder

import (
	"time"

	domloan "bookhaven/internal/domain/loan"
	reqdto "bookhaven/internal/handler/dto/request"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type LoanBuilder struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	UserID     uuid.UUID
	BookTitle  string
	BookAuthor string
	BookGenre  string
	BookImage  string
	UserName   string
	UserEmail  string
	BorrowedAt time.Time
	DueAt      time.Time
	Status     string
}

func NewLoanBuilder() *LoanBuilder {
	now := time.Now()
	return &LoanBuilder{
		ID:         uuid.New(),
		BookID:     uuid.New(),
		UserID:     uuid.New(),
		BookTitle:  "The Go Programming Language",
		BookAuthor: "Alan Donovan",
		BookGenre:  "Programming",
		BookImage:  "https://example.com/gopl.jpg",
		UserName:   "Alice Reader",
		UserEmail:  "alice@example.com",
		BorrowedAt: now,
		DueAt:      now.Add(14 * 24 * time.Hour),
		Status:     string(domloan.StatusBorrowed),
	}
}

func (l *LoanBuilder) With(mutate func(*LoanBuilder)) *LoanBuilder {
	mutate(l)
	return l
}

func (l *LoanBuilder) BuildDomain() (*domloan.Loan, error) {
	snapshot := domloan.BookSnapshot{
		Title:    l.BookTitle,
		Author:   l.BookAuthor,
		Genre:    l.BookGenre,
		ImageURL: l.BookImage,
	}
	return domloan.NewLoan(l.BookID, l.UserID, snapshot, l.UserName, l.UserEmail, l.DueAt, l.BorrowedAt, 0)
}

func (l *LoanBuilder) BuildReadModel() *readmodel.LoanRM {
	return &readmodel.LoanRM{
		ID:           l.ID,
		BookID:       l.BookID,
		UserID:       l.UserID,
		BookTitle:    l.BookTitle,
		BookAuthor:   l.BookAuthor,
		BookGenre:    l.BookGenre,
		BookImageURL: l.BookImage,
		UserName:     l.UserName,
		UserEmail:    l.UserEmail,
		BorrowedAt:   l.BorrowedAt,
		DueAt:        l.DueAt,
		Status:       l.Status,
	}
}

func (l *LoanBuilder) BuildBorrowRequestDTO() reqdto.BorrowBookRequest {
	return reqdto.BorrowBookRequest{
		BookID:     l.BookID,
		UserID:     l.UserID,
		UserName:   l.UserName,
		UserEmail:  l.UserEmail,
		ReturnDate: l.DueAt,
	}
}

func (l *LoanBuilder) BuildReturnRequestDTO() reqdto.ReturnBookRequest {
	return reqdto.ReturnBookRequest{
		LoanID: l.ID,
		BookID: l.BookID,
		UserID: l.UserID,
	}
}
