//go:build e2e

package lending_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"bookhaven/internal/domain/user"
	"bookhaven/internal/handler/dto/request"
	"bookhaven/internal/handler/dto/response"
	"bookhaven/tests/common/authtest"
	"bookhaven/tests/common/dbtest"
	"bookhaven/tests/common/httptest"
	"bookhaven/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	borrowURL = "/api/borrow"
	returnURL = "/api/return"
	loansURL  = "/api/loans"
)

type LendingSuite struct {
	e2e.SharedSuite
}

func (s *LendingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLendingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LendingSuite))
}

func (s *LendingSuite) borrowRequest(bookID, userID uuid.UUID) request.BorrowBookRequest {
	return request.BorrowBookRequest{
		BookID:     bookID,
		UserID:     userID,
		UserName:   "Alice Reader",
		UserEmail:  "alice@example.com",
		ReturnDate: time.Now().Add(14 * 24 * time.Hour),
	}
}

// =============================================================================
// TestBorrow - Borrow API tests
// =============================================================================

func (s *LendingSuite) TestBorrow() {
	s.Run("Normal case: borrow decrements stock and records the loan", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 2)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, userID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var receipt response.BorrowBookResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &receipt))
		require.NotEqual(t, uuid.Nil, receipt.LoanID)
		require.Equal(t, bookID, receipt.BookID)
		require.Equal(t, int32(1), receipt.RemainingQuantity)
		require.Equal(t, int32(1), dbtest.BookQuantity(t, s.DB, bookID))

		// The loan shows up in the borrower's history with the book snapshot.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, loansURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var loans []response.LoanResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &loans))
		require.Len(t, loans, 1)
		require.Equal(t, receipt.LoanID, loans[0].ID)
		require.Equal(t, "Dune", loans[0].BookTitle)
		require.Equal(t, "Frank Herbert", loans[0].BookAuthor)
		require.Equal(t, "borrowed", loans[0].Status)
	})

	s.Run("Error case: second borrow of the same book is rejected with alreadyBorrowed", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 5)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, userID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, userID), token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

		var body map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.Equal(t, true, body["alreadyBorrowed"])

		// The rejected borrow must not consume a copy.
		require.Equal(t, int32(4), dbtest.BookQuantity(t, s.DB, bookID))
	})

	s.Run("Error case: exhausted stock is rejected and quantity stays at zero", func() {
		t := s.T()

		aliceID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bobID := dbtest.CreateTestUser(t, s.DB, "Bob Reader", "bob@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, aliceID), aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, bobID), bobToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		require.Equal(t, int32(0), dbtest.BookQuantity(t, s.DB, bookID))
	})

	s.Run("Error case: borrowing on behalf of another user is forbidden", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		malloryID := dbtest.CreateTestUser(t, s.DB, "Mallory", "mallory@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, malloryID), token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
		require.Equal(t, int32(1), dbtest.BookQuantity(t, s.DB, bookID))
	})

	s.Run("Error case: unauthenticated borrow is rejected", func() {
		t := s.T()

		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, uuid.New()), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Concurrency: one copy is granted to exactly one of many borrowers", func() {
		t := s.T()

		const borrowers = 8
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)

		type borrower struct {
			id    uuid.UUID
			token string
		}
		people := make([]borrower, borrowers)
		for i := range people {
			email := "reader" + uuid.NewString()[:8] + "@example.com"
			id := dbtest.CreateTestUser(t, s.DB, "Concurrent Reader", email, string(user.RoleMember))
			people[i] = borrower{id: id, token: authtest.LoginUser(t, s.Router, email, "password123")}
		}

		var wg sync.WaitGroup
		codes := make(chan int, borrowers)
		for _, p := range people {
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
					s.borrowRequest(bookID, p.id), p.token)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		var created, rejected int
		for code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
				rejected++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, created, "exactly one borrower should win the last copy")
		require.Equal(t, borrowers-1, rejected)
		require.Equal(t, int32(0), dbtest.BookQuantity(t, s.DB, bookID))
	})
}

// =============================================================================
// TestListLoans - Loan history API tests
// =============================================================================

func (s *LendingSuite) TestListLoans() {
	s.Run("Normal case: history is ordered newest borrow first", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		duneID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)
		hyperionID := dbtest.CreateTestBook(t, s.DB, "Hyperion", "Dan Simmons", "Science Fiction", 1)
		neuromancerID := dbtest.CreateTestBook(t, s.DB, "Neuromancer", "William Gibson", "Science Fiction", 1)

		base := time.Now().UTC().Add(-72 * time.Hour).Truncate(time.Second)
		dbtest.CreateTestLoan(t, s.DB, duneID, userID, "Dune", base, "returned")
		dbtest.CreateTestLoan(t, s.DB, hyperionID, userID, "Hyperion", base.Add(24*time.Hour), "returned")
		dbtest.CreateTestLoan(t, s.DB, neuromancerID, userID, "Neuromancer", base.Add(48*time.Hour), "borrowed")

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, loansURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var loans []response.LoanResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &loans))
		require.Len(t, loans, 3)

		titles := make([]string, len(loans))
		for i, l := range loans {
			titles[i] = l.BookTitle
		}
		require.Equal(t, []string{"Neuromancer", "Hyperion", "Dune"}, titles)
		require.True(t, loans[0].BorrowedAt.After(loans[1].BorrowedAt))
		require.True(t, loans[1].BorrowedAt.After(loans[2].BorrowedAt))
	})
}

// =============================================================================
// TestReturn - Return API tests
// =============================================================================

func (s *LendingSuite) TestReturn() {
	s.Run("Normal case: return closes the loan and restores the copy", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, userID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var receipt response.BorrowBookResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &receipt))

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL,
			request.ReturnBookRequest{LoanID: receipt.LoanID, BookID: bookID, UserID: userID}, token)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		var result response.ReturnBookResponse
		require.NoError(t, httptest.DecodeResponseBody(t, rw.Body, &result))
		require.True(t, result.Success)
		require.Equal(t, int32(1), dbtest.BookQuantity(t, s.DB, bookID))

		// The closed loan keeps its history entry.
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, loansURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)
		var loans []response.LoanResponse
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &loans))
		require.Len(t, loans, 1)
		require.Equal(t, "returned", loans[0].Status)
		require.NotNil(t, loans[0].ReturnedAt)

		// After the return, the same user may borrow the book again.
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, userID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: double return is rejected and does not inflate stock", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, userID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var receipt response.BorrowBookResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &receipt))

		returnReq := request.ReturnBookRequest{LoanID: receipt.LoanID, BookID: bookID, UserID: userID}
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL, returnReq, token)
		require.Equal(t, http.StatusOK, rw.Code, rw.Body.String())

		rw = httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL, returnReq, token)
		require.Equal(t, http.StatusNotFound, rw.Code, rw.Body.String())
		require.Equal(t, int32(1), dbtest.BookQuantity(t, s.DB, bookID))
	})

	s.Run("Error case: returning another user's loan is forbidden", func() {
		t := s.T()

		aliceID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bobID := dbtest.CreateTestUser(t, s.DB, "Bob Reader", "bob@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 2)

		aliceToken := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")
		bobToken := authtest.LoginUser(t, s.Router, "bob@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, borrowURL,
			s.borrowRequest(bookID, aliceID), aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var receipt response.BorrowBookResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &receipt))

		// Bob names himself in the request, so he passes the identity match
		// but does not own the loan.
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL,
			request.ReturnBookRequest{LoanID: receipt.LoanID, BookID: bookID, UserID: bobID}, bobToken)
		require.Equal(t, http.StatusForbidden, rw.Code, rw.Body.String())
		require.Equal(t, int32(1), dbtest.BookQuantity(t, s.DB, bookID))
	})

	s.Run("Error case: unknown loan returns 404", func() {
		t := s.T()

		userID := dbtest.CreateTestUser(t, s.DB, "Alice Reader", "alice@example.com", string(user.RoleMember))
		bookID := dbtest.CreateTestBook(t, s.DB, "Dune", "Frank Herbert", "Science Fiction", 1)
		token := authtest.LoginUser(t, s.Router, "alice@example.com", "password123")

		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, returnURL,
			request.ReturnBookRequest{LoanID: uuid.New(), BookID: bookID, UserID: userID}, token)
		require.Equal(t, http.StatusNotFound, rw.Code, rw.Body.String())
	})
}
