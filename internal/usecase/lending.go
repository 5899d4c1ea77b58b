package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bookhaven/internal/domain/loan"
	"bookhaven/internal/infra"
	"bookhaven/internal/pkg/clock"
	"bookhaven/internal/pkg/errs"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookNotFound    = errors.New("book not found")
	ErrBookOutOfStock  = errors.New("book out of stock")
	ErrAlreadyBorrowed = errors.New("book already borrowed by this user")
	ErrLoanNotFound    = errors.New("loan not found")
	ErrLoanNotOwned    = errors.New("loan owned by another user")
	ErrInvalidLoan     = errors.New("invalid loan request")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type BookStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookRM, error)
	TryDecrementQuantity(ctx context.Context, id uuid.UUID) (int32, error)
	IncrementQuantity(ctx context.Context, id uuid.UUID) (int32, error)
}

type LoanStore interface {
	FindActive(ctx context.Context, bookID, userID uuid.UUID) (*readmodel.LoanRM, error)
	Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error)
	Close(ctx context.Context, loanID, userID uuid.UUID, returnedAt time.Time) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.LoanRM, error)
}

type BorrowBookParams struct {
	BookID    uuid.UUID
	UserID    uuid.UUID
	UserName  string
	UserEmail string
	DueAt     time.Time
}

// BorrowReceipt is the success result of a borrow: the new loan and the
// quantity observed immediately after the decrement.
type BorrowReceipt struct {
	LoanID            uuid.UUID
	BookID            uuid.UUID
	RemainingQuantity int32
}

type LendingUseCase interface {
	BorrowBook(ctx context.Context, params BorrowBookParams) (*BorrowReceipt, error)
	ReturnBook(ctx context.Context, loanID, bookID, userID uuid.UUID) error
	GetUserLoans(ctx context.Context, userID uuid.UUID) ([]*readmodel.LoanRM, error)
}

type lendingUseCaseImpl struct {
	bookStore     BookStore
	loanStore     LoanStore
	clock         clock.Clock
	maxLoanPeriod time.Duration
}

func NewLendingUseCase(bookStore BookStore, loanStore LoanStore, clock clock.Clock, maxLoanPeriod time.Duration) LendingUseCase {
	return &lendingUseCaseImpl{
		bookStore:     bookStore,
		loanStore:     loanStore,
		clock:         clock,
		maxLoanPeriod: maxLoanPeriod,
	}
}

// BorrowBook runs the borrow sequence: duplicate-loan check, atomic
// decrement, loan creation. The decrement and the creation form one
// logical transaction; when creation fails the decrement is compensated
// by an immediate increment so no copy is ever lost to a half-finished
// borrow.
func (l *lendingUseCaseImpl) BorrowBook(ctx context.Context, params BorrowBookParams) (*BorrowReceipt, error) {
	if err := l.checkNotAlreadyBorrowed(ctx, params.BookID, params.UserID); err != nil {
		return nil, err
	}

	// Snapshot book metadata before the decrement so the loan keeps the
	// catalog state the user actually saw.
	bookRM, err := l.bookStore.FindByID(ctx, params.BookID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	loanEntity, err := loan.NewLoan(
		params.BookID,
		params.UserID,
		loan.BookSnapshot{
			Title:    bookRM.Title,
			Author:   bookRM.Author,
			Genre:    bookRM.Genre,
			ImageURL: bookRM.ImageURL,
		},
		params.UserName,
		params.UserEmail,
		params.DueAt,
		l.clock.Now(),
		l.maxLoanPeriod,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidLoan)
	}

	remaining, err := l.bookStore.TryDecrementQuantity(ctx, params.BookID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookNotFound
		case infra.IsKind(err, infra.KindPreconditionFailed):
			return nil, ErrBookOutOfStock
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	loanID, err := l.loanStore.Create(ctx, loanEntity)
	if err != nil {
		l.compensateDecrement(ctx, params.BookID)
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// A concurrent borrow by the same user won the race.
			return nil, ErrAlreadyBorrowed
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BorrowReceipt{
		LoanID:            loanID,
		BookID:            params.BookID,
		RemainingQuantity: remaining,
	}, nil
}

// ReturnBook closes the loan first; a failed or unauthorized close must
// leave the book store untouched. The increment after a successful close
// is not rolled back on failure: re-opening a closed loan is judged less
// safe than reconciling a missing copy later, so the discrepancy is
// logged instead.
func (l *lendingUseCaseImpl) ReturnBook(ctx context.Context, loanID, bookID, userID uuid.UUID) error {
	if err := l.loanStore.Close(ctx, loanID, userID, l.clock.Now()); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return ErrLoanNotFound
		case infra.IsKind(err, infra.KindForbidden):
			return ErrLoanNotOwned
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	if _, err := l.bookStore.IncrementQuantity(ctx, bookID); err != nil {
		slog.Warn("loan closed but quantity not restored; reconciliation required",
			"loan_id", loanID,
			"book_id", bookID,
			"error", err.Error())
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}

func (l *lendingUseCaseImpl) GetUserLoans(ctx context.Context, userID uuid.UUID) ([]*readmodel.LoanRM, error) {
	loans, err := l.loanStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to find user loans")
	}
	return loans, nil
}

func (l *lendingUseCaseImpl) checkNotAlreadyBorrowed(ctx context.Context, bookID, userID uuid.UUID) error {
	_, err := l.loanStore.FindActive(ctx, bookID, userID)
	if err == nil {
		return ErrAlreadyBorrowed
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}

// compensationTimeout bounds the compensating increment independently
// of the request deadline.
const compensationTimeout = 5 * time.Second

// compensateDecrement restores the quantity taken by a decrement whose
// borrow never completed. The creation failure may be the request
// context timing out or being cancelled, and a cancelled context fails
// every subsequent store call, so the compensation runs detached from
// the request's cancellation under its own deadline. A failure here
// leaves a copy unaccounted for, which is only recoverable by
// reconciliation, so it is logged loudly.
func (l *lendingUseCaseImpl) compensateDecrement(ctx context.Context, bookID uuid.UUID) {
	compCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	if _, err := l.bookStore.IncrementQuantity(compCtx, bookID); err != nil {
		slog.Error("failed to compensate decrement after loan creation failure; reconciliation required",
			"book_id", bookID,
			"error", err.Error())
	}
}
