package request

import (
	"time"

	"bookhaven/internal/usecase"

	"github.com/google/uuid"
)

type BorrowBookRequest struct {
	BookID     uuid.UUID `json:"bookId" binding:"required"`
	UserID     uuid.UUID `json:"userId" binding:"required"`
	UserName   string    `json:"userName" binding:"required"`
	UserEmail  string    `json:"userEmail" binding:"required,email"`
	ReturnDate time.Time `json:"returnDate" binding:"required"`
}

func (r BorrowBookRequest) ToParams() usecase.BorrowBookParams {
	return usecase.BorrowBookParams{
		BookID:    r.BookID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		DueAt:     r.ReturnDate,
	}
}

type ReturnBookRequest struct {
	LoanID uuid.UUID `json:"loanId" binding:"required"`
	BookID uuid.UUID `json:"bookId" binding:"required"`
	UserID uuid.UUID `json:"userId" binding:"required"`
}
