package response

import (
	"time"

	"bookhaven/internal/usecase"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BorrowBookResponse struct {
	LoanID            uuid.UUID `json:"loanId"`
	BookID            uuid.UUID `json:"bookId"`
	RemainingQuantity int32     `json:"remainingQuantity"`
}

func FromBorrowReceipt(receipt *usecase.BorrowReceipt) *BorrowBookResponse {
	return &BorrowBookResponse{
		LoanID:            receipt.LoanID,
		BookID:            receipt.BookID,
		RemainingQuantity: receipt.RemainingQuantity,
	}
}

type ReturnBookResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LoanResponse struct {
	ID         uuid.UUID  `json:"id"`
	BookID     uuid.UUID  `json:"bookId"`
	UserID     uuid.UUID  `json:"userId"`
	BookTitle  string     `json:"bookTitle"`
	BookAuthor string     `json:"bookAuthor"`
	BookGenre  string     `json:"bookGenre"`
	BookImage  string     `json:"bookImage"`
	UserName   string     `json:"userName"`
	UserEmail  string     `json:"userEmail"`
	BorrowedAt time.Time  `json:"borrowedAt"`
	DueAt      time.Time  `json:"dueAt"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty"`
	Status     string     `json:"status"`
}

func FromLoanRM(rm *readmodel.LoanRM) *LoanResponse {
	var resp LoanResponse
	_ = copier.Copy(&resp, rm)
	resp.BookImage = rm.BookImageURL
	return &resp
}

func FromLoanRMs(rms []*readmodel.LoanRM) []*LoanResponse {
	resp := make([]*LoanResponse, len(rms))
	for i, rm := range rms {
		resp[i] = FromLoanRM(rm)
	}
	return resp
}
