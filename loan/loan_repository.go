package loan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectLoan = `
	SELECT l.id, l.user_id, u.username, l.game_id, g.name,
		l.loan_date, l.estimated_return_date, l.actual_return_date, l.status
	FROM club.loans l
	JOIN club.users u ON u.id = l.user_id
	JOIN club.games g ON g.id = l.game_id
`

func scanLoan(row pgx.Row) (Loan, error) {
	var loan Loan

	err := row.Scan(
		&loan.ID,
		&loan.UserID,
		&loan.Username,
		&loan.GameID,
		&loan.GameName,
		&loan.LoanDate,
		&loan.EstimatedReturnDate,
		&loan.ActualReturnDate,
		&loan.Status,
	)

	return loan, err
}

func collectLoans(rows pgx.Rows) ([]Loan, error) {
	defer rows.Close()

	loans := []Loan{}

	for rows.Next() {
		loan, err := scanLoan(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning loan row: %w", err)
		}

		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}

	return loans, nil
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]Loan, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch loans: %w", err)
	}

	return collectLoans(rows)
}

func (r *Repository) GetLoans(ctx context.Context) ([]Loan, error) {
	return r.query(ctx, selectLoan+`ORDER BY l.loan_date DESC;`)
}

func (r *Repository) GetLoansByStatus(ctx context.Context, status Status) ([]Loan, error) {
	return r.query(ctx, selectLoan+`WHERE l.status=$1 ORDER BY l.loan_date DESC;`, status)
}

func (r *Repository) GetLoansByUser(ctx context.Context, userID string) ([]Loan, error) {
	return r.query(ctx, selectLoan+`WHERE l.user_id=$1 ORDER BY l.loan_date DESC;`, userID)
}

func (r *Repository) GetLoansByGame(ctx context.Context, gameID string) ([]Loan, error) {
	return r.query(ctx, selectLoan+`WHERE l.game_id=$1 ORDER BY l.loan_date DESC;`, gameID)
}

func (r *Repository) GetOverdueLoans(ctx context.Context, today time.Time) ([]Loan, error) {
	sql := selectLoan + `WHERE l.status=$1 AND l.estimated_return_date < $2 ORDER BY l.estimated_return_date;`
	return r.query(ctx, sql, StatusActive, today)
}

func (r *Repository) GetLoanByID(ctx context.Context, id string) (Loan, error) {
	return getLoan(ctx, r.pool, id)
}

// WithGameLock runs fn in a transaction holding the row lock of the game. The transaction
// commits when fn returns nil.
func (r *Repository) WithGameLock(ctx context.Context, gameID string, fn func(tx LoanTx, game catalog.Game) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		game, err := catalog.LockGame(ctx, tx, gameID)

		if err != nil {
			return err
		}

		return fn(&loanTx{tx: tx}, game)
	})
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getLoan(ctx context.Context, q querier, id string) (Loan, error) {
	loan, err := scanLoan(q.QueryRow(ctx, selectLoan+`WHERE l.id=$1;`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Loan{}, ErrLoanNotFound
	}

	if err != nil {
		return Loan{}, fmt.Errorf("failed to fetch loan %v: %w", id, err)
	}

	return loan, nil
}

type loanTx struct{ tx pgx.Tx }

func (t *loanTx) GetLoan(ctx context.Context, id string) (Loan, error) {
	return getLoan(ctx, t.tx, id)
}

func (t *loanTx) GetActiveLoans(ctx context.Context, gameID string) ([]Loan, error) {
	rows, err := t.tx.Query(ctx, selectLoan+`WHERE l.game_id=$1 AND l.status=$2;`, gameID, StatusActive)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch active loans of game %v: %w", gameID, err)
	}

	return collectLoans(rows)
}

func (t *loanTx) CountOverdueByUser(ctx context.Context, userID string, today time.Time) (int, error) {
	var count int

	sql := `SELECT COUNT(*) FROM club.loans WHERE user_id=$1 AND status=$2 AND estimated_return_date < $3;`
	if err := t.tx.QueryRow(ctx, sql, userID, StatusActive, today).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count overdue loans of user %v: %w", userID, err)
	}

	return count, nil
}

func (t *loanTx) InsertLoan(ctx context.Context, loan Loan) (Loan, error) {
	sql := `INSERT INTO club.loans (user_id, game_id, loan_date, estimated_return_date, status)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id;
	`

	err := t.tx.QueryRow(ctx, sql, loan.UserID, loan.GameID, loan.LoanDate, loan.EstimatedReturnDate, loan.Status).Scan(&loan.ID)

	if err != nil {
		return Loan{}, fmt.Errorf("failed to insert loan: %w", err)
	}

	return loan, nil
}

func (t *loanTx) UpdateLoan(ctx context.Context, loan Loan) error {
	sql := `UPDATE club.loans SET status=$1, actual_return_date=$2 WHERE id=$3;`

	tag, err := t.tx.Exec(ctx, sql, loan.Status, loan.ActualReturnDate, loan.ID)

	if err != nil {
		return fmt.Errorf("failed to update loan '%v': %w", loan.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}

	return nil
}

func (t *loanTx) DeleteLoan(ctx context.Context, id string) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM club.loans WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete loan '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrLoanNotFound
	}

	return nil
}

func (t *loanTx) SetGameAvailable(ctx context.Context, gameID string, available bool) error {
	return catalog.SetAvailable(ctx, t.tx, gameID, available)
}
