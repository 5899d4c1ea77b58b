package loan

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidDueDate  = errors.New("due date must be after the borrow date")
	ErrDueDateTooFar   = errors.New("due date exceeds the maximum loan period")
	ErrEmptyBorrower   = errors.New("borrower name must not be empty")
	ErrMissingBook     = errors.New("book reference must not be empty")
	ErrMissingUser     = errors.New("user reference must not be empty")
	ErrAlreadyReturned = errors.New("loan is already returned")
)

type Status string

const (
	StatusBorrowed Status = "borrowed"
	StatusReturned Status = "returned"
)

// BookSnapshot is the book metadata denormalized onto a loan at borrow
// time. Later catalog edits never touch it.
type BookSnapshot struct {
	Title    string
	Author   string
	Genre    string
	ImageURL string
}

// Loan records one borrow of one book copy by one user. It is created in
// status borrowed and transitions exactly once to returned; records are
// never deleted so the lending history stays auditable.
type Loan struct {
	id         uuid.UUID
	bookID     uuid.UUID
	userID     uuid.UUID
	book       BookSnapshot
	userName   string
	userEmail  string
	borrowedAt time.Time
	dueAt      time.Time
	returnedAt *time.Time
	status     Status
}

// NewLoan builds a loan in status borrowed. maxPeriod bounds how far in
// the future dueAt may lie; zero disables the bound.
func NewLoan(bookID, userID uuid.UUID, book BookSnapshot, userName, userEmail string, dueAt, now time.Time, maxPeriod time.Duration) (*Loan, error) {
	if bookID == uuid.Nil {
		return nil, ErrMissingBook
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, ErrEmptyBorrower
	}
	if !dueAt.After(now) {
		return nil, ErrInvalidDueDate
	}
	if maxPeriod > 0 && dueAt.Sub(now) > maxPeriod {
		return nil, ErrDueDateTooFar
	}
	return &Loan{
		id:         uuid.New(),
		bookID:     bookID,
		userID:     userID,
		book:       book,
		userName:   userName,
		userEmail:  strings.TrimSpace(userEmail),
		borrowedAt: now,
		dueAt:      dueAt,
		status:     StatusBorrowed,
	}, nil
}

func (l *Loan) ID() uuid.UUID          { return l.id }
func (l *Loan) BookID() uuid.UUID      { return l.bookID }
func (l *Loan) UserID() uuid.UUID      { return l.userID }
func (l *Loan) Book() BookSnapshot     { return l.book }
func (l *Loan) UserName() string       { return l.userName }
func (l *Loan) UserEmail() string      { return l.userEmail }
func (l *Loan) BorrowedAt() time.Time  { return l.borrowedAt }
func (l *Loan) DueAt() time.Time       { return l.dueAt }
func (l *Loan) ReturnedAt() *time.Time { return l.returnedAt }
func (l *Loan) Status() Status         { return l.status }

func (l *Loan) IsActive() bool {
	return l.status == StatusBorrowed
}

// MarkReturned performs the single legal transition borrowed -> returned.
func (l *Loan) MarkReturned(at time.Time) error {
	if l.status == StatusReturned {
		return ErrAlreadyReturned
	}
	l.status = StatusReturned
	l.returnedAt = &at
	return nil
}
