package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectGame = `
	SELECT id, name, COALESCE(description, ''), min_players, max_players, duration_minutes,
		COALESCE(category, ''), available, acquisition_date, COALESCE(state, '')
	FROM club.games
`

func scanGame(row pgx.Row) (Game, error) {
	var game Game
	err := row.Scan(
		&game.ID,
		&game.Name,
		&game.Description,
		&game.MinPlayers,
		&game.MaxPlayers,
		&game.DurationMinutes,
		&game.Category,
		&game.Available,
		&game.AcquisitionDate,
		&game.State,
	)
	return game, err
}

func (r *Repository) GetGames(ctx context.Context) ([]Game, error) {
	return r.query(ctx, selectGame+`ORDER BY name;`)
}

func (r *Repository) GetGamesByAvailable(ctx context.Context, available bool) ([]Game, error) {
	return r.query(ctx, selectGame+`WHERE available=$1 ORDER BY name;`, available)
}

func (r *Repository) GetGameByID(ctx context.Context, id string) (Game, error) {
	game, err := scanGame(r.pool.QueryRow(ctx, selectGame+`WHERE id=$1;`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Game{}, ErrGameNotFound
	}

	if err != nil {
		return Game{}, fmt.Errorf("failed to fetch game with id %v: %w", id, err)
	}

	return game, nil
}

func (r *Repository) InsertGame(ctx context.Context, game Game) (Game, error) {
	sql := `
			INSERT INTO club.games(
			name, description, min_players, max_players, duration_minutes, category, available, acquisition_date, state)
			VALUES ($1, $2, $3, $4, $5, $6, true, $7, NULLIF($8, ''))
			RETURNING id;
		`

	err := r.pool.QueryRow(ctx, sql,
		game.Name,
		game.Description,
		game.MinPlayers,
		game.MaxPlayers,
		game.DurationMinutes,
		game.Category,
		game.AcquisitionDate,
		game.State,
	).Scan(&game.ID)

	if err != nil {
		return Game{}, fmt.Errorf("failed to insert game: %w", err)
	}

	game.Available = true

	return game, nil
}

func (r *Repository) UpdateGame(ctx context.Context, game Game) error {
	sql := `
			UPDATE club.games
			SET
				name=$1,
				description=$2,
				min_players=$3,
				max_players=$4,
				duration_minutes=$5,
				category=$6,
				state=NULLIF($7, '')
			WHERE id=$8;
		`

	tag, err := r.pool.Exec(ctx, sql,
		game.Name,
		game.Description,
		game.MinPlayers,
		game.MaxPlayers,
		game.DurationMinutes,
		game.Category,
		game.State,
		game.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]Game, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	defer rows.Close()

	games := []Game{}

	for rows.Next() {
		game, err := scanGame(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning game row: %w", err)
		}

		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}

	return games, nil
}

// LockGame reads a game inside tx and holds its row lock until tx ends.
func LockGame(ctx context.Context, tx pgx.Tx, id string) (Game, error) {
	game, err := scanGame(tx.QueryRow(ctx, selectGame+`WHERE id=$1 FOR UPDATE;`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Game{}, ErrGameNotFound
	}

	if err != nil {
		return Game{}, fmt.Errorf("failed to lock game %v: %w", id, err)
	}

	return game, nil
}

// SetAvailable persists an availability flip inside tx.
func SetAvailable(ctx context.Context, tx pgx.Tx, id string, available bool) error {
	tag, err := tx.Exec(ctx, `UPDATE club.games SET available=$1 WHERE id=$2;`, available, id)

	if err != nil {
		return fmt.Errorf("failed to set game '%v' availability: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}

	return nil
}
