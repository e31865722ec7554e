package memory

import (
	"context"
	"slices"
	"time"

	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/loan"
)

func (s *Store) GetLoans(ctx context.Context) ([]loan.Loan, error) {
	return s.filterLoans(func(loan.Loan) bool { return true }), nil
}

func (s *Store) GetLoansByStatus(ctx context.Context, status loan.Status) ([]loan.Loan, error) {
	return s.filterLoans(func(l loan.Loan) bool { return l.Status == status }), nil
}

func (s *Store) GetLoansByUser(ctx context.Context, userID string) ([]loan.Loan, error) {
	return s.filterLoans(func(l loan.Loan) bool { return l.UserID == userID }), nil
}

func (s *Store) GetLoansByGame(ctx context.Context, gameID string) ([]loan.Loan, error) {
	return s.filterLoans(func(l loan.Loan) bool { return l.GameID == gameID }), nil
}

func (s *Store) GetOverdueLoans(ctx context.Context, today time.Time) ([]loan.Loan, error) {
	return s.filterLoans(func(l loan.Loan) bool { return l.IsOverdue(today) }), nil
}

func (s *Store) GetLoanByID(ctx context.Context, id string) (loan.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.loans[id]
	if !ok {
		return loan.Loan{}, loan.ErrLoanNotFound
	}
	return s.hydrateLoan(l), nil
}

// WithGameLock runs fn while holding the game's mutex. Writes made through tx are applied
// only when fn returns nil.
func (s *Store) WithGameLock(ctx context.Context, gameID string, fn func(tx loan.LoanTx, game catalog.Game) error) error {
	unlock := s.gameKeys.Lock(gameID)
	defer unlock()

	game, err := s.GetGameByID(ctx, gameID)
	if err != nil {
		return err
	}

	tx := &loanTx{store: s}
	if err := fn(tx, game); err != nil {
		return err
	}

	s.commit(tx.writes)

	return nil
}

func (s *Store) hydrateLoan(l loan.Loan) loan.Loan {
	l.Username = s.users[l.UserID].Username
	l.GameName = s.games[l.GameID].Name
	return l
}

func (s *Store) filterLoans(keep func(loan.Loan) bool) []loan.Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loans := []loan.Loan{}
	for _, l := range s.loans {
		if keep(l) {
			loans = append(loans, s.hydrateLoan(l))
		}
	}

	slices.SortFunc(loans, func(a, b loan.Loan) int {
		return b.LoanDate.Compare(a.LoanDate)
	})

	return loans
}

type loanTx struct {
	store  *Store
	writes writes
}

func (t *loanTx) GetLoan(ctx context.Context, id string) (loan.Loan, error) {
	return t.store.GetLoanByID(ctx, id)
}

func (t *loanTx) GetActiveLoans(ctx context.Context, gameID string) ([]loan.Loan, error) {
	return t.store.filterLoans(func(l loan.Loan) bool { return l.GameID == gameID && l.IsActive() }), nil
}

func (t *loanTx) CountOverdueByUser(ctx context.Context, userID string, today time.Time) (int, error) {
	overdue := t.store.filterLoans(func(l loan.Loan) bool { return l.UserID == userID && l.IsOverdue(today) })
	return len(overdue), nil
}

func (t *loanTx) InsertLoan(ctx context.Context, l loan.Loan) (loan.Loan, error) {
	l.ID = newID()
	t.writes = append(t.writes, func() {
		t.store.loans[l.ID] = l
	})
	return l, nil
}

func (t *loanTx) UpdateLoan(ctx context.Context, l loan.Loan) error {
	if _, err := t.store.GetLoanByID(ctx, l.ID); err != nil {
		return err
	}

	t.writes = append(t.writes, func() {
		current := t.store.loans[l.ID]
		current.Status = l.Status
		current.ActualReturnDate = l.ActualReturnDate
		t.store.loans[l.ID] = current
	})
	return nil
}

func (t *loanTx) DeleteLoan(ctx context.Context, id string) error {
	if _, err := t.store.GetLoanByID(ctx, id); err != nil {
		return err
	}

	t.writes = append(t.writes, func() {
		delete(t.store.loans, id)
	})
	return nil
}

func (t *loanTx) SetGameAvailable(ctx context.Context, gameID string, available bool) error {
	if _, err := t.store.GetGameByID(ctx, gameID); err != nil {
		return err
	}

	t.writes = append(t.writes, func() {
		game := t.store.games[gameID]
		game.Available = available
		t.store.games[gameID] = game
	})
	return nil
}
