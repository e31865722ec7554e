package loan

import (
	"context"
	"log/slog"
	"time"

	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/users"
)

type LoanRepository interface {
	GetLoans(ctx context.Context) ([]Loan, error)
	GetLoansByStatus(ctx context.Context, status Status) ([]Loan, error)
	GetLoansByUser(ctx context.Context, userID string) ([]Loan, error)
	GetLoansByGame(ctx context.Context, gameID string) ([]Loan, error)
	GetOverdueLoans(ctx context.Context, today time.Time) ([]Loan, error)
	GetLoanByID(ctx context.Context, id string) (Loan, error)
	WithGameLock(ctx context.Context, gameID string, fn func(tx LoanTx, game catalog.Game) error) error
}

// LoanTx reads and writes loans while the game row is locked.
type LoanTx interface {
	GetLoan(ctx context.Context, id string) (Loan, error)
	GetActiveLoans(ctx context.Context, gameID string) ([]Loan, error)
	CountOverdueByUser(ctx context.Context, userID string, today time.Time) (int, error)
	InsertLoan(ctx context.Context, loan Loan) (Loan, error)
	UpdateLoan(ctx context.Context, loan Loan) error
	DeleteLoan(ctx context.Context, id string) error
	SetGameAvailable(ctx context.Context, gameID string, available bool) error
}

type Option func(*Service)

// WithOverdueBorrowerBlock refuses new loans to users holding an overdue loan.
func WithOverdueBorrowerBlock(enabled bool) Option {
	return func(s *Service) {
		s.blockOverdueBorrowers = enabled
	}
}

type Service struct {
	repo                  LoanRepository
	clock                 clock.Clock
	blockOverdueBorrowers bool
	logger                *slog.Logger
}

func NewService(repo LoanRepository, clk clock.Clock, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		clock:  clk,
		logger: slog.Default().With("component", "loan"),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// CreateLoan lends a game to user until estimatedReturnDate. The game must be available
// and free of active loans.
func (s *Service) CreateLoan(ctx context.Context, user users.User, gameID string, estimatedReturnDate time.Time) (Loan, error) {
	today := clock.Today(s.clock)
	estimatedReturnDate = clock.DateOf(estimatedReturnDate)

	if estimatedReturnDate.Before(today) {
		return Loan{}, ErrInvalidReturnDate
	}

	var created Loan

	err := s.repo.WithGameLock(ctx, gameID, func(tx LoanTx, game catalog.Game) error {
		if !game.Available {
			return ErrGameNotAvailable
		}

		active, err := tx.GetActiveLoans(ctx, gameID)

		if err != nil {
			return err
		}

		for _, l := range active {
			if l.UserID == user.ID {
				return ErrDuplicateUserLoan
			}
		}

		if len(active) > 0 {
			holder := active[0]
			return &GameAlreadyLoanedError{
				HolderID:       holder.UserID,
				HolderUsername: holder.Username,
				DueDate:        holder.EstimatedReturnDate,
			}
		}

		if s.blockOverdueBorrowers {
			overdue, err := tx.CountOverdueByUser(ctx, user.ID, today)

			if err != nil {
				return err
			}

			if overdue > 0 {
				return ErrBorrowerHasOverdueLoans
			}
		}

		created, err = tx.InsertLoan(ctx, Loan{
			UserID:              user.ID,
			Username:            user.Username,
			GameID:              game.ID,
			GameName:            game.Name,
			LoanDate:            today,
			EstimatedReturnDate: estimatedReturnDate,
			Status:              StatusActive,
		})

		if err != nil {
			return err
		}

		return tx.SetGameAvailable(ctx, game.ID, false)
	})

	if err != nil {
		s.logger.Debug("loan refused", "game", gameID, "user", user.ID, "err", err)
		return Loan{}, err
	}

	s.logger.Info("game loaned", "loan", created.ID, "game", created.GameName, "user", user.Username, "due", estimatedReturnDate.Format(time.DateOnly))

	return created, nil
}

// RegisterReturn closes an active loan and makes its game available again. The loan ends
// LATE when returnDate is after the estimated return date, RETURNED otherwise.
func (s *Service) RegisterReturn(ctx context.Context, loanID string, returnDate time.Time) (Loan, error) {
	loan, err := s.repo.GetLoanByID(ctx, loanID)

	if err != nil {
		return Loan{}, err
	}

	returnDate = clock.DateOf(returnDate)

	err = s.repo.WithGameLock(ctx, loan.GameID, func(tx LoanTx, _ catalog.Game) error {
		current, err := tx.GetLoan(ctx, loanID)

		if err != nil {
			return err
		}

		if !current.IsActive() {
			return ErrInvalidLoanState
		}

		current.ActualReturnDate = &returnDate
		current.Status = StatusReturned

		if returnDate.After(current.EstimatedReturnDate) {
			current.Status = StatusLate
		}

		if err := tx.UpdateLoan(ctx, current); err != nil {
			return err
		}

		loan = current

		return tx.SetGameAvailable(ctx, current.GameID, true)
	})

	if err != nil {
		return Loan{}, err
	}

	s.logger.Info("game returned", "loan", loan.ID, "game", loan.GameName, "status", loan.Status)

	return loan, nil
}

// DeleteLoan removes a loan record. Removing an active loan makes its game available again.
func (s *Service) DeleteLoan(ctx context.Context, loanID string) error {
	loan, err := s.repo.GetLoanByID(ctx, loanID)

	if err != nil {
		return err
	}

	err = s.repo.WithGameLock(ctx, loan.GameID, func(tx LoanTx, _ catalog.Game) error {
		current, err := tx.GetLoan(ctx, loanID)

		if err != nil {
			return err
		}

		if err := tx.DeleteLoan(ctx, loanID); err != nil {
			return err
		}

		if current.IsActive() {
			return tx.SetGameAvailable(ctx, current.GameID, true)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("loan deleted", "loan", loanID, "game", loan.GameName)

	return nil
}

// CalculateDelayDays is the number of days loan is or was late.
func (s *Service) CalculateDelayDays(loan Loan) int {
	return loan.DelayDays(clock.Today(s.clock))
}

// FindOverdue lists active loans whose estimated return date has passed.
func (s *Service) FindOverdue(ctx context.Context) ([]Loan, error) {
	return s.repo.GetOverdueLoans(ctx, clock.Today(s.clock))
}

func (s *Service) FindLoanByID(ctx context.Context, id string) (Loan, error) {
	return s.repo.GetLoanByID(ctx, id)
}

// ListLoans returns every loan, or only those in status when it is not empty.
func (s *Service) ListLoans(ctx context.Context, status Status) ([]Loan, error) {
	if status == "" {
		return s.repo.GetLoans(ctx)
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.repo.GetLoansByStatus(ctx, status)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Loan, error) {
	return s.repo.GetLoansByUser(ctx, userID)
}

func (s *Service) ListByGame(ctx context.Context, gameID string) ([]Loan, error) {
	return s.repo.GetLoansByGame(ctx, gameID)
}
