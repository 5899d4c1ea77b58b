package repository

import (
	"context"
	"errors"
	"time"

	"bookhaven/internal/domain/loan"
	"bookhaven/internal/infra"
	"bookhaven/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LoanRepository struct {
	db DB
}

func NewLoanRepository(db DB) *LoanRepository {
	return &LoanRepository{db: db}
}

const loanColumns = `id, book_id, user_id, book_title, book_author, book_genre, book_image_url,
	user_name, user_email, borrowed_at, due_at, returned_at, status`

// FindActive returns the unique borrowed-status loan for (book, user).
// Uniqueness is guaranteed by the partial index loans_one_active_per_pair.
func (r *LoanRepository) FindActive(ctx context.Context, bookID, userID uuid.UUID) (*readmodel.LoanRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+loanColumns+`
		FROM loans
		WHERE book_id = $1 AND user_id = $2 AND status = 'borrowed'`,
		bookID, userID,
	)

	rm, err := scanLoan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("active loan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active loan", err)
	}
	return rm, nil
}

// Create persists a new borrowed loan. The partial unique index rejects a
// second active loan for the same (book, user) pair, which surfaces here
// as KindDuplicateKey; that is the defense in depth beneath the
// coordinator's own pre-check.
func (r *LoanRepository) Create(ctx context.Context, l *loan.Loan) (uuid.UUID, error) {
	_, err := r.db.Exec(ctx, `
		INSERT INTO loans (id, book_id, user_id, book_title, book_author, book_genre, book_image_url,
			user_name, user_email, borrowed_at, due_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		l.ID(), l.BookID(), l.UserID(),
		l.Book().Title, l.Book().Author, l.Book().Genre, l.Book().ImageURL,
		l.UserName(), l.UserEmail(), l.BorrowedAt(), l.DueAt(), string(l.Status()),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create loan", err, infra.ClassifyPgError(err))
	}
	return l.ID(), nil
}

// Close transitions a borrowed loan to returned and stamps the return
// time. The status guard makes the transition terminal: a returned loan
// can never re-enter borrowed.
func (r *LoanRepository) Close(ctx context.Context, loanID, userID uuid.UUID, returnedAt time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE loans
		SET status = 'returned', returned_at = $3
		WHERE id = $1 AND user_id = $2 AND status = 'borrowed'`,
		loanID, userID, returnedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to close loan", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Nothing matched: work out whether the loan is missing, already
	// returned, or owned by someone else.
	var ownerID uuid.UUID
	var status string
	err = r.db.QueryRow(ctx, `SELECT user_id, status FROM loans WHERE id = $1`, loanID).Scan(&ownerID, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("loan not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to inspect loan", err)
	}
	if ownerID != userID {
		return infra.WrapRepoErr("loan owned by another user", nil, infra.KindForbidden)
	}
	return infra.WrapRepoErr("loan already returned", nil, infra.KindNotFound)
}

func (r *LoanRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*readmodel.LoanRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+loanColumns+`
		FROM loans
		WHERE user_id = $1
		ORDER BY borrowed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list loans by user", err)
	}
	defer rows.Close()

	loans := make([]*readmodel.LoanRM, 0)
	for rows.Next() {
		rm, err := scanLoan(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan loan", err)
		}
		loans = append(loans, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read loans", err)
	}
	return loans, nil
}

func scanLoan(row pgx.Row) (*readmodel.LoanRM, error) {
	var rm readmodel.LoanRM
	err := row.Scan(
		&rm.ID, &rm.BookID, &rm.UserID,
		&rm.BookTitle, &rm.BookAuthor, &rm.BookGenre, &rm.BookImageURL,
		&rm.UserName, &rm.UserEmail,
		&rm.BorrowedAt, &rm.DueAt, &rm.ReturnedAt, &rm.Status,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
