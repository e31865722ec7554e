package loan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/loan"
	loan_mocks "github.com/hanksha/boardgame-club-backend/loan/mocks"
	"github.com/hanksha/boardgame-club-backend/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	alice = users.User{ID: "u1", Username: "alice", Role: users.RoleBasicUser}
	bob   = users.User{ID: "u2", Username: "bob", Role: users.RoleBasicUser}
	catan = catalog.Game{ID: "g1", Name: "Catan", Available: true, State: catalog.StateGood}
	today = clock.Date(2024, time.June, 1)
)

var errDB = errors.New("db error")

type testDeps struct {
	repo  *loan_mocks.MockLoanRepository
	tx    *loan_mocks.MockLoanTx
	clock *clock.Fixed
	ctx   context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	return ctrl, testDeps{
		repo:  loan_mocks.NewMockLoanRepository(ctrl),
		tx:    loan_mocks.NewMockLoanTx(ctrl),
		clock: clock.NewFixed(today.Add(15 * time.Hour)),
		ctx:   context.Background(),
	}
}

func (d testDeps) service(opts ...loan.Option) *loan.Service {
	return loan.NewService(d.repo, d.clock, opts...)
}

// expectLock makes WithGameLock run the closure against the mock transaction.
func (d testDeps) expectLock(game catalog.Game) {
	d.repo.EXPECT().
		WithGameLock(d.ctx, game.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func(loan.LoanTx, catalog.Game) error) error {
			return fn(d.tx, game)
		}).
		Times(1)
}

func activeLoan(user users.User, due time.Time) loan.Loan {
	return loan.Loan{
		ID:                  "l1",
		UserID:              user.ID,
		Username:            user.Username,
		GameID:              catan.ID,
		GameName:            catan.Name,
		LoanDate:            today,
		EstimatedReturnDate: due,
		Status:              loan.StatusActive,
	}
}

func TestCreateLoan(t *testing.T) {
	due := clock.Date(2024, time.June, 8)

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.expectLock(catan)
		deps.tx.EXPECT().GetActiveLoans(deps.ctx, catan.ID).Return([]loan.Loan{}, nil).Times(1)
		deps.tx.EXPECT().InsertLoan(deps.ctx, loan.Loan{
			UserID:              alice.ID,
			Username:            alice.Username,
			GameID:              catan.ID,
			GameName:            catan.Name,
			LoanDate:            today,
			EstimatedReturnDate: due,
			Status:              loan.StatusActive,
		}).DoAndReturn(func(_ context.Context, l loan.Loan) (loan.Loan, error) {
			l.ID = "l1"
			return l, nil
		}).Times(1)
		deps.tx.EXPECT().SetGameAvailable(deps.ctx, catan.ID, false).Return(nil).Times(1)

		created, err := deps.service().CreateLoan(deps.ctx, alice, catan.ID, due)

		require.NoError(t, err)
		require.Equal(t, activeLoan(alice, due), created)
	})

	t.Run("game not available", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		lent := catan
		lent.Available = false
		deps.expectLock(lent)

		_, err := deps.service().CreateLoan(deps.ctx, alice, catan.ID, due)

		require.ErrorIs(t, err, loan.ErrGameNotAvailable)
		require.True(t, loan.IsConstraintViolation(err))
	})

	t.Run("duplicate user loan", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.expectLock(catan)
		deps.tx.EXPECT().GetActiveLoans(deps.ctx, catan.ID).Return([]loan.Loan{activeLoan(alice, due)}, nil).Times(1)

		_, err := deps.service().CreateLoan(deps.ctx, alice, catan.ID, due)

		require.ErrorIs(t, err, loan.ErrDuplicateUserLoan)
	})

	t.Run("held by another user", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.expectLock(catan)
		deps.tx.EXPECT().GetActiveLoans(deps.ctx, catan.ID).Return([]loan.Loan{activeLoan(bob, due)}, nil).Times(1)

		_, err := deps.service().CreateLoan(deps.ctx, alice, catan.ID, due)

		require.ErrorIs(t, err, loan.ErrGameAlreadyLoaned)

		var loaned *loan.GameAlreadyLoanedError
		require.ErrorAs(t, err, &loaned)
		assert.Equal(t, bob.ID, loaned.HolderID)
		assert.Equal(t, "bob", loaned.HolderUsername)
		assert.Equal(t, due, loaned.DueDate)
	})

	t.Run("unknown game", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().WithGameLock(deps.ctx, "missing", gomock.Any()).Return(catalog.ErrGameNotFound).Times(1)

		_, err := deps.service().CreateLoan(deps.ctx, alice, "missing", due)

		require.ErrorIs(t, err, catalog.ErrGameNotFound)
	})

	t.Run("return date in the past", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service().CreateLoan(deps.ctx, alice, catan.ID, clock.Date(2024, time.May, 31))

		require.ErrorIs(t, err, loan.ErrInvalidReturnDate)
	})

	t.Run("overdue borrower blocked when enabled", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.expectLock(catan)
		deps.tx.EXPECT().GetActiveLoans(deps.ctx, catan.ID).Return(nil, nil).Times(1)
		deps.tx.EXPECT().CountOverdueByUser(deps.ctx, alice.ID, today).Return(1, nil).Times(1)

		_, err := deps.service(loan.WithOverdueBorrowerBlock(true)).CreateLoan(deps.ctx, alice, catan.ID, due)

		require.ErrorIs(t, err, loan.ErrBorrowerHasOverdueLoans)
		require.True(t, loan.IsConstraintViolation(err))
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.expectLock(catan)
		deps.tx.EXPECT().GetActiveLoans(deps.ctx, catan.ID).Return(nil, nil).Times(1)
		deps.tx.EXPECT().InsertLoan(deps.ctx, gomock.Any()).Return(loan.Loan{}, errDB).Times(1)

		_, err := deps.service().CreateLoan(deps.ctx, alice, catan.ID, due)

		require.ErrorIs(t, err, errDB)
		require.False(t, loan.IsConstraintViolation(err))
	})
}

func TestRegisterReturn(t *testing.T) {
	due := clock.Date(2024, time.June, 8)

	cases := map[string]struct {
		returnDate time.Time
		status     loan.Status
	}{
		"on time":       {returnDate: due, status: loan.StatusReturned},
		"early":         {returnDate: clock.Date(2024, time.June, 3), status: loan.StatusReturned},
		"after the due": {returnDate: clock.Date(2024, time.June, 9), status: loan.StatusLate},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl, deps := newTestDeps(t)
			defer ctrl.Finish()

			active := activeLoan(alice, due)
			returned := active
			returned.ActualReturnDate = &tc.returnDate
			returned.Status = tc.status

			deps.repo.EXPECT().GetLoanByID(deps.ctx, active.ID).Return(active, nil).Times(1)
			deps.expectLock(catan)
			deps.tx.EXPECT().GetLoan(deps.ctx, active.ID).Return(active, nil).Times(1)
			deps.tx.EXPECT().UpdateLoan(deps.ctx, returned).Return(nil).Times(1)
			deps.tx.EXPECT().SetGameAvailable(deps.ctx, catan.ID, true).Return(nil).Times(1)

			got, err := deps.service().RegisterReturn(deps.ctx, active.ID, tc.returnDate)

			require.NoError(t, err)
			require.Equal(t, tc.status, got.Status)
			require.Equal(t, tc.returnDate, *got.ActualReturnDate)
		})
	}

	t.Run("already returned", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		returnedOn := clock.Date(2024, time.June, 5)
		returned := activeLoan(alice, due)
		returned.Status = loan.StatusReturned
		returned.ActualReturnDate = &returnedOn

		deps.repo.EXPECT().GetLoanByID(deps.ctx, returned.ID).Return(returned, nil).Times(1)
		deps.expectLock(catan)
		deps.tx.EXPECT().GetLoan(deps.ctx, returned.ID).Return(returned, nil).Times(1)

		_, err := deps.service().RegisterReturn(deps.ctx, returned.ID, clock.Date(2024, time.June, 7))

		require.ErrorIs(t, err, loan.ErrInvalidLoanState)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetLoanByID(deps.ctx, "missing").Return(loan.Loan{}, loan.ErrLoanNotFound).Times(1)

		_, err := deps.service().RegisterReturn(deps.ctx, "missing", due)

		require.ErrorIs(t, err, loan.ErrLoanNotFound)
	})
}

func TestDeleteLoan(t *testing.T) {
	t.Run("active loan frees the game", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		active := activeLoan(alice, today)

		deps.repo.EXPECT().GetLoanByID(deps.ctx, active.ID).Return(active, nil).Times(1)
		deps.expectLock(catan)
		deps.tx.EXPECT().GetLoan(deps.ctx, active.ID).Return(active, nil).Times(1)
		deps.tx.EXPECT().DeleteLoan(deps.ctx, active.ID).Return(nil).Times(1)
		deps.tx.EXPECT().SetGameAvailable(deps.ctx, catan.ID, true).Return(nil).Times(1)

		require.NoError(t, deps.service().DeleteLoan(deps.ctx, active.ID))
	})

	t.Run("returned loan leaves availability alone", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		returned := activeLoan(alice, today)
		returned.Status = loan.StatusReturned

		deps.repo.EXPECT().GetLoanByID(deps.ctx, returned.ID).Return(returned, nil).Times(1)
		deps.expectLock(catan)
		deps.tx.EXPECT().GetLoan(deps.ctx, returned.ID).Return(returned, nil).Times(1)
		deps.tx.EXPECT().DeleteLoan(deps.ctx, returned.ID).Return(nil).Times(1)

		require.NoError(t, deps.service().DeleteLoan(deps.ctx, returned.ID))
	})
}

func TestCalculateDelayDays(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	service := deps.service()

	t.Run("active and not yet due", func(t *testing.T) {
		require.Equal(t, 0, service.CalculateDelayDays(activeLoan(alice, clock.Date(2024, time.June, 4))))
	})

	t.Run("active and overdue", func(t *testing.T) {
		require.Equal(t, 3, service.CalculateDelayDays(activeLoan(alice, clock.Date(2024, time.May, 29))))
	})

	t.Run("returned late", func(t *testing.T) {
		returnedOn := clock.Date(2024, time.June, 10)
		l := activeLoan(alice, clock.Date(2024, time.June, 9))
		l.Status = loan.StatusLate
		l.ActualReturnDate = &returnedOn

		require.Equal(t, 1, service.CalculateDelayDays(l))
	})

	t.Run("returned early", func(t *testing.T) {
		returnedOn := clock.Date(2024, time.May, 20)
		l := activeLoan(alice, clock.Date(2024, time.June, 9))
		l.Status = loan.StatusReturned
		l.ActualReturnDate = &returnedOn

		require.Equal(t, 0, service.CalculateDelayDays(l))
	})
}

func TestFindOverdue(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	overdue := []loan.Loan{activeLoan(alice, clock.Date(2024, time.May, 29))}
	deps.repo.EXPECT().GetOverdueLoans(deps.ctx, today).Return(overdue, nil).Times(1)

	got, err := deps.service().FindOverdue(deps.ctx)

	require.NoError(t, err)
	require.Equal(t, overdue, got)
}

func TestListLoans(t *testing.T) {
	t.Run("by status", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetLoansByStatus(deps.ctx, loan.StatusLate).Return([]loan.Loan{}, nil).Times(1)

		_, err := deps.service().ListLoans(deps.ctx, loan.StatusLate)

		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := deps.service().ListLoans(deps.ctx, loan.Status("LOST"))

		require.ErrorIs(t, err, loan.ErrInvalidStatus)
	})
}
