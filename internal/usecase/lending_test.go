//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"bookhaven/internal/domain/loan"
	"bookhaven/internal/infra"
	"bookhaven/internal/pkg/clock"
	"bookhaven/internal/usecase"
	"bookhaven/internal/usecase/readmodel"
	"bookhaven/tests/common/builder"
	usecasemock "bookhaven/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const maxLoanPeriod = 720 * time.Hour

type LendingUseCaseTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockBookStore *usecasemock.MockBookStore
	mockLoanStore *usecasemock.MockLoanStore
	clock         *clock.MockClock
	uc            usecase.LendingUseCase
}

func (s *LendingUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookStore = usecasemock.NewMockBookStore(s.mockCtrl)
	s.mockLoanStore = usecasemock.NewMockLoanStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.uc = usecase.NewLendingUseCase(s.mockBookStore, s.mockLoanStore, s.clock, maxLoanPeriod)
}

func (s *LendingUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLendingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(LendingUseCaseTestSuite))
}

func (s *LendingUseCaseTestSuite) borrowParams() usecase.BorrowBookParams {
	b := builder.NewLoanBuilder()
	b.DueAt = s.clock.Now().Add(14 * 24 * time.Hour)
	return usecase.BorrowBookParams{
		BookID:    b.BookID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		UserEmail: b.UserEmail,
		DueAt:     b.DueAt,
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

// ================================================================================
// BorrowBook
// ================================================================================

func (s *LendingUseCaseTestSuite) TestBorrowBook() {
	s.Run("success: decrements stock and creates the loan", func() {
		params := s.borrowParams()
		bookRM := builder.NewBookBuilder().BuildReadModel()
		bookRM.ID = params.BookID
		loanID := uuid.New()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)
		s.mockBookStore.EXPECT().TryDecrementQuantity(gomock.Any(), params.BookID).
			Return(int32(2), nil)
		s.mockLoanStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *loan.Loan) (uuid.UUID, error) {
				s.Equal(params.BookID, l.BookID())
				s.Equal(params.UserID, l.UserID())
				s.Equal(bookRM.Title, l.Book().Title)
				s.Equal(loan.StatusBorrowed, l.Status())
				return loanID, nil
			})

		receipt, err := s.uc.BorrowBook(context.Background(), params)
		s.NoError(err)
		s.Equal(loanID, receipt.LoanID)
		s.Equal(params.BookID, receipt.BookID)
		s.Equal(int32(2), receipt.RemainingQuantity)
	})

	s.Run("error: active loan already exists for this user and book", func() {
		params := s.borrowParams()
		active := builder.NewLoanBuilder().BuildReadModel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(active, nil)

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrAlreadyBorrowed)
	})

	s.Run("error: book does not exist", func() {
		params := s.borrowParams()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(nil, notFoundErr())

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrBookNotFound)
	})

	s.Run("error: due date in the past rejects before any stock mutation", func() {
		params := s.borrowParams()
		params.DueAt = s.clock.Now().Add(-time.Hour)
		bookRM := builder.NewBookBuilder().BuildReadModel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrInvalidLoan)
	})

	s.Run("error: due date beyond the loan period rejects before any stock mutation", func() {
		params := s.borrowParams()
		params.DueAt = s.clock.Now().Add(maxLoanPeriod + time.Hour)
		bookRM := builder.NewBookBuilder().BuildReadModel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrInvalidLoan)
	})

	s.Run("error: no copies available", func() {
		params := s.borrowParams()
		bookRM := builder.NewBookBuilder().BuildReadModel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)
		s.mockBookStore.EXPECT().TryDecrementQuantity(gomock.Any(), params.BookID).
			Return(int32(0), infra.WrapRepoErr("quantity exhausted", nil, infra.KindPreconditionFailed))

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrBookOutOfStock)
	})

	s.Run("error: loan creation failure restores the decremented copy", func() {
		params := s.borrowParams()
		bookRM := builder.NewBookBuilder().BuildReadModel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)
		s.mockBookStore.EXPECT().TryDecrementQuantity(gomock.Any(), params.BookID).
			Return(int32(0), nil)
		s.mockLoanStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("insert failed", errors.New("connection reset"), infra.KindDBFailure))
		s.mockBookStore.EXPECT().IncrementQuantity(gomock.Any(), params.BookID).
			Return(int32(1), nil).Times(1)

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})

	s.Run("error: creation failing with a dead request context still compensates", func() {
		params := s.borrowParams()
		bookRM := builder.NewBookBuilder().BuildReadModel()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)
		s.mockBookStore.EXPECT().TryDecrementQuantity(gomock.Any(), params.BookID).
			Return(int32(0), nil)
		s.mockLoanStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *loan.Loan) (uuid.UUID, error) {
				cancel()
				return uuid.Nil, infra.WrapRepoErr("insert failed", context.Canceled, infra.KindDBFailure)
			})
		s.mockBookStore.EXPECT().IncrementQuantity(gomock.Any(), params.BookID).
			DoAndReturn(func(compCtx context.Context, _ uuid.UUID) (int32, error) {
				s.NoError(compCtx.Err(), "compensation must not inherit the request cancellation")
				return int32(1), nil
			}).Times(1)

		_, err := s.uc.BorrowBook(ctx, params)
		s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})

	s.Run("error: duplicate-key on creation compensates and reports already borrowed", func() {
		params := s.borrowParams()
		bookRM := builder.NewBookBuilder().BuildReadModel()

		s.mockLoanStore.EXPECT().FindActive(gomock.Any(), params.BookID, params.UserID).
			Return(nil, notFoundErr())
		s.mockBookStore.EXPECT().FindByID(gomock.Any(), params.BookID).
			Return(bookRM, nil)
		s.mockBookStore.EXPECT().TryDecrementQuantity(gomock.Any(), params.BookID).
			Return(int32(0), nil)
		s.mockLoanStore.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey))
		s.mockBookStore.EXPECT().IncrementQuantity(gomock.Any(), params.BookID).
			Return(int32(1), nil).Times(1)

		_, err := s.uc.BorrowBook(context.Background(), params)
		s.ErrorIs(err, usecase.ErrAlreadyBorrowed)
	})
}

// ================================================================================
// ReturnBook
// ================================================================================

func (s *LendingUseCaseTestSuite) TestReturnBook() {
	loanID := uuid.New()
	bookID := uuid.New()
	userID := uuid.New()

	s.Run("success: closes the loan then restores the copy", func() {
		s.mockLoanStore.EXPECT().Close(gomock.Any(), loanID, userID, s.clock.Now()).
			Return(nil)
		s.mockBookStore.EXPECT().IncrementQuantity(gomock.Any(), bookID).
			Return(int32(3), nil)

		s.NoError(s.uc.ReturnBook(context.Background(), loanID, bookID, userID))
	})

	s.Run("error: unknown or already returned loan leaves stock untouched", func() {
		s.mockLoanStore.EXPECT().Close(gomock.Any(), loanID, userID, s.clock.Now()).
			Return(notFoundErr())

		err := s.uc.ReturnBook(context.Background(), loanID, bookID, userID)
		s.ErrorIs(err, usecase.ErrLoanNotFound)
	})

	s.Run("error: another user's loan leaves stock untouched", func() {
		s.mockLoanStore.EXPECT().Close(gomock.Any(), loanID, userID, s.clock.Now()).
			Return(infra.WrapRepoErr("owned by another user", nil, infra.KindForbidden))

		err := s.uc.ReturnBook(context.Background(), loanID, bookID, userID)
		s.ErrorIs(err, usecase.ErrLoanNotOwned)
	})

	s.Run("error: missing book after close is reported, not rolled back", func() {
		s.mockLoanStore.EXPECT().Close(gomock.Any(), loanID, userID, s.clock.Now()).
			Return(nil)
		s.mockBookStore.EXPECT().IncrementQuantity(gomock.Any(), bookID).
			Return(int32(0), notFoundErr())

		err := s.uc.ReturnBook(context.Background(), loanID, bookID, userID)
		s.ErrorIs(err, usecase.ErrBookNotFound)
	})
}

// ================================================================================
// GetUserLoans
// ================================================================================

func (s *LendingUseCaseTestSuite) TestGetUserLoans() {
	userID := uuid.New()

	s.Run("success: returns the store result", func() {
		loans := []*readmodel.LoanRM{builder.NewLoanBuilder().BuildReadModel()}
		s.mockLoanStore.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(loans, nil)

		got, err := s.uc.GetUserLoans(context.Background(), userID)
		s.NoError(err)
		s.Equal(loans, got)
	})

	s.Run("error: store failure is wrapped", func() {
		s.mockLoanStore.EXPECT().FindByUserID(gomock.Any(), userID).
			Return(nil, errors.New("connection reset"))

		_, err := s.uc.GetUserLoans(context.Background(), userID)
		s.Error(err)
	})
}

// ================================================================================
// Concurrency
// ================================================================================

// fakeBookStore holds quantities behind a mutex so concurrent decrements
// behave like the single-statement guarded UPDATE in Postgres.
type fakeBookStore struct {
	mu    sync.Mutex
	books map[uuid.UUID]*readmodel.BookRM
}

func newFakeBookStore(books ...*readmodel.BookRM) *fakeBookStore {
	s := &fakeBookStore{books: make(map[uuid.UUID]*readmodel.BookRM)}
	for _, b := range books {
		s.books[b.ID] = b
	}
	return s
}

func (f *fakeBookStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.BookRM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookStore) TryDecrementQuantity(_ context.Context, id uuid.UUID) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return 0, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	if b.Quantity <= 0 {
		return 0, infra.WrapRepoErr("quantity exhausted", nil, infra.KindPreconditionFailed)
	}
	b.Quantity--
	return b.Quantity, nil
}

func (f *fakeBookStore) IncrementQuantity(_ context.Context, id uuid.UUID) (int32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.books[id]
	if !ok {
		return 0, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	b.Quantity++
	return b.Quantity, nil
}

func (f *fakeBookStore) quantity(id uuid.UUID) int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.books[id].Quantity
}

type activeKey struct {
	bookID uuid.UUID
	userID uuid.UUID
}

// fakeLoanStore enforces the one-active-loan-per-pair rule the way the
// partial unique index does.
type fakeLoanStore struct {
	mu     sync.Mutex
	active map[activeKey]uuid.UUID
	loans  map[uuid.UUID]*readmodel.LoanRM
}

func newFakeLoanStore() *fakeLoanStore {
	return &fakeLoanStore{
		active: make(map[activeKey]uuid.UUID),
		loans:  make(map[uuid.UUID]*readmodel.LoanRM),
	}
}

func (f *fakeLoanStore) FindActive(_ context.Context, bookID, userID uuid.UUID) (*readmodel.LoanRM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.active[activeKey{bookID, userID}]
	if !ok {
		return nil, infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
	}
	return f.loans[id], nil
}

func (f *fakeLoanStore) Create(_ context.Context, l *loan.Loan) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := activeKey{l.BookID(), l.UserID()}
	if _, exists := f.active[key]; exists {
		return uuid.Nil, infra.WrapRepoErr("duplicate active loan", nil, infra.KindDuplicateKey)
	}
	rm := &readmodel.LoanRM{
		ID:         l.ID(),
		BookID:     l.BookID(),
		UserID:     l.UserID(),
		BookTitle:  l.Book().Title,
		UserName:   l.UserName(),
		BorrowedAt: l.BorrowedAt(),
		DueAt:      l.DueAt(),
		Status:     string(loan.StatusBorrowed),
	}
	f.active[key] = l.ID()
	f.loans[l.ID()] = rm
	return l.ID(), nil
}

func (f *fakeLoanStore) Close(_ context.Context, loanID, userID uuid.UUID, returnedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rm, ok := f.loans[loanID]
	if !ok || rm.Status != string(loan.StatusBorrowed) {
		return infra.WrapRepoErr("no active loan", nil, infra.KindNotFound)
	}
	if rm.UserID != userID {
		return infra.WrapRepoErr("owned by another user", nil, infra.KindForbidden)
	}
	rm.Status = string(loan.StatusReturned)
	rm.ReturnedAt = &returnedAt
	delete(f.active, activeKey{rm.BookID, rm.UserID})
	return nil
}

func (f *fakeLoanStore) FindByUserID(_ context.Context, userID uuid.UUID) ([]*readmodel.LoanRM, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*readmodel.LoanRM
	for _, rm := range f.loans {
		if rm.UserID == userID {
			result = append(result, rm)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].BorrowedAt.After(result[j].BorrowedAt)
	})
	return result, nil
}

func TestBorrowBookConcurrentSingleCopy(t *testing.T) {
	const borrowers = 20

	book := builder.NewBookBuilder().BuildReadModel()
	book.Quantity = 1
	bookStore := newFakeBookStore(book)
	loanStore := newFakeLoanStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	uc := usecase.NewLendingUseCase(bookStore, loanStore, clk, maxLoanPeriod)

	dueAt := clk.Now().Add(7 * 24 * time.Hour)

	var wg sync.WaitGroup
	errCh := make(chan error, borrowers)
	for i := 0; i < borrowers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.BorrowBook(context.Background(), usecase.BorrowBookParams{
				BookID:    book.ID,
				UserID:    uuid.New(),
				UserName:  "Concurrent Reader",
				UserEmail: "reader@example.com",
				DueAt:     dueAt,
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, outOfStock int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, usecase.ErrBookOutOfStock):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Fatalf("expected exactly 1 successful borrow, got %d", succeeded)
	}
	if outOfStock != borrowers-1 {
		t.Fatalf("expected %d out-of-stock failures, got %d", borrowers-1, outOfStock)
	}
	if got := bookStore.quantity(book.ID); got != 0 {
		t.Fatalf("expected quantity 0 after the race, got %d", got)
	}
}

func TestBorrowReturnRoundTrip(t *testing.T) {
	book := builder.NewBookBuilder().BuildReadModel()
	book.Quantity = 2
	bookStore := newFakeBookStore(book)
	loanStore := newFakeLoanStore()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	uc := usecase.NewLendingUseCase(bookStore, loanStore, clk, maxLoanPeriod)

	userID := uuid.New()
	params := usecase.BorrowBookParams{
		BookID:    book.ID,
		UserID:    userID,
		UserName:  "Alice Reader",
		UserEmail: "alice@example.com",
		DueAt:     clk.Now().Add(7 * 24 * time.Hour),
	}

	receipt, err := uc.BorrowBook(context.Background(), params)
	if err != nil {
		t.Fatalf("borrow failed: %v", err)
	}
	if receipt.RemainingQuantity != 1 {
		t.Fatalf("expected remaining quantity 1, got %d", receipt.RemainingQuantity)
	}

	// A second borrow of the same book by the same user must fail while
	// the first loan is open.
	if _, err := uc.BorrowBook(context.Background(), params); !errors.Is(err, usecase.ErrAlreadyBorrowed) {
		t.Fatalf("expected ErrAlreadyBorrowed, got %v", err)
	}

	// Returning under another user's identity must not close the loan.
	if err := uc.ReturnBook(context.Background(), receipt.LoanID, book.ID, uuid.New()); !errors.Is(err, usecase.ErrLoanNotOwned) {
		t.Fatalf("expected ErrLoanNotOwned, got %v", err)
	}
	if got := bookStore.quantity(book.ID); got != 1 {
		t.Fatalf("rejected return must not change quantity, got %d", got)
	}

	clk.Advance(24 * time.Hour)
	if err := uc.ReturnBook(context.Background(), receipt.LoanID, book.ID, userID); err != nil {
		t.Fatalf("return failed: %v", err)
	}
	if got := bookStore.quantity(book.ID); got != 2 {
		t.Fatalf("expected quantity restored to 2, got %d", got)
	}

	// A second return of the same loan is rejected.
	if err := uc.ReturnBook(context.Background(), receipt.LoanID, book.ID, userID); !errors.Is(err, usecase.ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound on double return, got %v", err)
	}

	// After returning, the same user may borrow the book again.
	if _, err := uc.BorrowBook(context.Background(), params); err != nil {
		t.Fatalf("re-borrow after return failed: %v", err)
	}
}
