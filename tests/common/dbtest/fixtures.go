//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bookhaven/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const TestPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

func CreateTestUser(t *testing.T, db DBLike, name, email, role string) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		testPasswordHash = h
	})

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, name, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestBook(t *testing.T, db DBLike, title, author, genre string, quantity int32) uuid.UUID {
	t.Helper()

	bookID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO books (id, title, author, genre, description, rating, image_url, quantity) VALUES ($1, $2, $3, $4, '', 4.0, '', $5) ON CONFLICT (title, author) DO NOTHING",
		bookID, title, author, genre, quantity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM books WHERE title = $1 AND author = $2", title, author).Scan(&bookID)
	}

	return bookID
}

// CreateTestLoan inserts a loan row directly, bypassing the borrow flow,
// so tests can control borrowed_at and status.
func CreateTestLoan(t *testing.T, db DBLike, bookID, userID uuid.UUID, bookTitle string, borrowedAt time.Time, status string) uuid.UUID {
	t.Helper()

	loanID := uuid.New()
	var returnedAt *time.Time
	if status == "returned" {
		rt := borrowedAt.Add(24 * time.Hour)
		returnedAt = &rt
	}

	_, err := db.Exec(context.Background(),
		`INSERT INTO loans (id, book_id, user_id, book_title, book_author, book_genre, book_image_url,
		                    user_name, user_email, borrowed_at, due_at, returned_at, status)
		 VALUES ($1, $2, $3, $4, 'Fixture Author', 'Fixture Genre', '',
		         'Fixture Reader', 'fixture@example.com', $5, $6, $7, $8)`,
		loanID, bookID, userID, bookTitle, borrowedAt, borrowedAt.Add(14*24*time.Hour), returnedAt, status)
	require.NoError(t, err)

	return loanID
}

func BookQuantity(t *testing.T, db DBLike, bookID uuid.UUID) int32 {
	t.Helper()

	var quantity int32
	err := db.QueryRow(context.Background(), "SELECT quantity FROM books WHERE id = $1", bookID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
