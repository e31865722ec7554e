package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/boardgame-club-backend/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const selectSession = `
	SELECT s.id, s.creator_id, u.username, u.first_name, COALESCE(u.last_name, ''),
		s.game_id, COALESCE(g.name, ''), s.title, COALESCE(s.description, ''),
		COALESCE(s.custom_game_name, ''), COALESCE(s.custom_game_description, ''), COALESCE(s.custom_image_path, ''),
		s.start_date, s.start_time, s.end_date, COALESCE(s.end_time, ''), s.max_players, s.status
	FROM club.sessions s
	JOIN club.users u ON u.id = s.creator_id
	LEFT JOIN club.games g ON g.id = s.game_id
`

func scanSession(row pgx.Row) (Session, error) {
	var session Session
	var creator users.User

	err := row.Scan(
		&session.ID,
		&session.CreatorID,
		&creator.Username,
		&creator.FirstName,
		&creator.LastName,
		&session.GameID,
		&session.GameName,
		&session.Title,
		&session.Description,
		&session.CustomGameName,
		&session.CustomGameDescription,
		&session.CustomImagePath,
		&session.StartDate,
		&session.StartTime,
		&session.EndDate,
		&session.EndTime,
		&session.MaxPlayers,
		&session.Status,
	)

	session.CreatorName = creator.DisplayName()

	return session, err
}

func (r *Repository) GetSessions(ctx context.Context) ([]Session, error) {
	return r.query(ctx, selectSession+`ORDER BY s.start_date, s.start_time;`)
}

func (r *Repository) GetSessionsByStatus(ctx context.Context, status Status) ([]Session, error) {
	return r.query(ctx, selectSession+`WHERE s.status=$1 ORDER BY s.start_date, s.start_time;`, status)
}

func (r *Repository) GetSessionsByGame(ctx context.Context, gameID string) ([]Session, error) {
	return r.query(ctx, selectSession+`WHERE s.game_id=$1 ORDER BY s.start_date, s.start_time;`, gameID)
}

func (r *Repository) GetSessionsByCreator(ctx context.Context, userID string) ([]Session, error) {
	return r.query(ctx, selectSession+`WHERE s.creator_id=$1 ORDER BY s.start_date, s.start_time;`, userID)
}

func (r *Repository) GetSessionsByPlayer(ctx context.Context, userID string) ([]Session, error) {
	sql := selectSession + `
		WHERE EXISTS (SELECT 1 FROM club.session_players p WHERE p.session_id = s.id AND p.user_id = $1)
		ORDER BY s.start_date, s.start_time;
	`
	return r.query(ctx, sql, userID)
}

func (r *Repository) GetSessionByID(ctx context.Context, id string) (Session, error) {
	session, err := scanSession(r.pool.QueryRow(ctx, selectSession+`WHERE s.id=$1;`, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Session{}, ErrSessionNotFound
	}

	if err != nil {
		return Session{}, fmt.Errorf("failed to fetch session with id %v: %w", id, err)
	}

	sessions := []Session{session}

	if err := r.attachPlayers(ctx, sessions); err != nil {
		return Session{}, err
	}

	return sessions[0], nil
}

// InsertSession stores a new session together with its creator's roster row.
func (r *Repository) InsertSession(ctx context.Context, session Session, creator Player) (Session, error) {
	sql := `
			INSERT INTO club.sessions(
			creator_id, game_id, title, description, custom_game_name, custom_game_description, custom_image_path,
			start_date, start_time, end_date, end_time, max_players, status)
			VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, NULLIF($11, ''), $12, $13)
			RETURNING id;
		`

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, sql,
			session.CreatorID,
			session.GameID,
			session.Title,
			session.Description,
			session.CustomGameName,
			session.CustomGameDescription,
			session.CustomImagePath,
			session.StartDate,
			session.StartTime,
			session.EndDate,
			session.EndTime,
			session.MaxPlayers,
			session.Status,
		).Scan(&session.ID)

		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}

		creator.SessionID = session.ID

		return insertPlayer(ctx, tx, creator)
	})

	if err != nil {
		return Session{}, err
	}

	session.Players = []Player{creator}

	return session, nil
}

func (r *Repository) SetSessionStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE club.sessions SET status=$1 WHERE id=$2;`, status, id)

	if err != nil {
		return fmt.Errorf("failed to update session '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes a session; roster rows go with it through ON DELETE CASCADE.
func (r *Repository) DeleteSession(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM club.sessions WHERE id=$1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete session '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// WithSessionLock runs fn in a transaction holding the session row lock.
func (r *Repository) WithSessionLock(ctx context.Context, id string, fn func(tx SessionTx, session Session) error) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		session, err := scanSession(tx.QueryRow(ctx, selectSession+`WHERE s.id=$1 FOR UPDATE OF s;`, id))

		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSessionNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to lock session %v: %w", id, err)
		}

		return fn(&sessionTx{tx: tx}, session)
	})
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]Session, error) {
	rows, err := r.pool.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch sessions: %w", err)
	}

	defer rows.Close()

	sessions := []Session{}

	for rows.Next() {
		session, err := scanSession(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}

		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	if err := r.attachPlayers(ctx, sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *Repository) attachPlayers(ctx context.Context, sessions []Session) error {
	if len(sessions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(sessions))
	index := make(map[string]int, len(sessions))

	for i, session := range sessions {
		ids = append(ids, session.ID)
		index[session.ID] = i
		sessions[i].Players = []Player{}
	}

	sql := `
		SELECT p.session_id, p.user_id, u.username, p.join_date, p.confirmed
		FROM club.session_players p
		JOIN club.users u ON u.id = p.user_id
		WHERE p.session_id = ANY($1)
		ORDER BY p.join_date, u.username;
	`

	rows, err := r.pool.Query(ctx, sql, ids)

	if err != nil {
		return fmt.Errorf("failed to fetch session players: %w", err)
	}

	defer rows.Close()

	for rows.Next() {
		var player Player
		err := rows.Scan(&player.SessionID, &player.UserID, &player.Username, &player.JoinDate, &player.Confirmed)

		if err != nil {
			return fmt.Errorf("error scanning player row: %w", err)
		}

		i := index[player.SessionID]
		sessions[i].Players = append(sessions[i].Players, player)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating player rows: %w", err)
	}

	return nil
}

type sessionTx struct{ tx pgx.Tx }

func (t *sessionTx) GetPlayer(ctx context.Context, sessionID, userID string) (Player, error) {
	sql := `
		SELECT p.session_id, p.user_id, u.username, p.join_date, p.confirmed
		FROM club.session_players p
		JOIN club.users u ON u.id = p.user_id
		WHERE p.session_id=$1 AND p.user_id=$2;
	`

	var player Player
	err := t.tx.QueryRow(ctx, sql, sessionID, userID).Scan(
		&player.SessionID,
		&player.UserID,
		&player.Username,
		&player.JoinDate,
		&player.Confirmed,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Player{}, ErrPlayerNotFound
	}

	if err != nil {
		return Player{}, fmt.Errorf("failed to fetch player %v in session %v: %w", userID, sessionID, err)
	}

	return player, nil
}

func (t *sessionTx) CountConfirmed(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := t.tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM club.session_players WHERE session_id=$1 AND confirmed;`,
		sessionID,
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count confirmed players: %w", err)
	}

	return count, nil
}

func (t *sessionTx) InsertPlayer(ctx context.Context, player Player) error {
	return insertPlayer(ctx, t.tx, player)
}

func (t *sessionTx) DeletePlayer(ctx context.Context, sessionID, userID string) error {
	tag, err := t.tx.Exec(ctx,
		`DELETE FROM club.session_players WHERE session_id=$1 AND user_id=$2;`,
		sessionID, userID,
	)

	if err != nil {
		return fmt.Errorf("failed to remove player: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

func (t *sessionTx) SetConfirmed(ctx context.Context, sessionID, userID string) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE club.session_players SET confirmed=true WHERE session_id=$1 AND user_id=$2;`,
		sessionID, userID,
	)

	if err != nil {
		return fmt.Errorf("failed to confirm player: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

func (t *sessionTx) UpdateSession(ctx context.Context, session Session) error {
	sql := `
			UPDATE club.sessions
			SET
				game_id=$1,
				title=$2,
				description=$3,
				custom_game_name=$4,
				custom_game_description=$5,
				custom_image_path=NULLIF($6, ''),
				start_date=$7,
				start_time=$8,
				end_date=$9,
				end_time=NULLIF($10, ''),
				max_players=$11
			WHERE id=$12;
		`

	tag, err := t.tx.Exec(ctx, sql,
		session.GameID,
		session.Title,
		session.Description,
		session.CustomGameName,
		session.CustomGameDescription,
		session.CustomImagePath,
		session.StartDate,
		session.StartTime,
		session.EndDate,
		session.EndTime,
		session.MaxPlayers,
		session.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func insertPlayer(ctx context.Context, tx pgx.Tx, player Player) error {
	_, err := tx.Exec(ctx, `
			INSERT INTO club.session_players(session_id, user_id, join_date, confirmed)
			VALUES ($1, $2, $3, $4);
		`,
		player.SessionID,
		player.UserID,
		player.JoinDate,
		player.Confirmed,
	)

	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	return nil
}
