package session

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/users"
)

type SessionRepository interface {
	GetSessions(ctx context.Context) ([]Session, error)
	GetSessionsByStatus(ctx context.Context, status Status) ([]Session, error)
	GetSessionsByGame(ctx context.Context, gameID string) ([]Session, error)
	GetSessionsByCreator(ctx context.Context, userID string) ([]Session, error)
	GetSessionsByPlayer(ctx context.Context, userID string) ([]Session, error)
	GetSessionByID(ctx context.Context, id string) (Session, error)
	InsertSession(ctx context.Context, session Session, creator Player) (Session, error)
	SetSessionStatus(ctx context.Context, id string, status Status) error
	DeleteSession(ctx context.Context, id string) error
	WithSessionLock(ctx context.Context, id string, fn func(tx SessionTx, session Session) error) error
}

// SessionTx is the set of roster operations available while a session row is locked.
type SessionTx interface {
	GetPlayer(ctx context.Context, sessionID, userID string) (Player, error)
	CountConfirmed(ctx context.Context, sessionID string) (int, error)
	InsertPlayer(ctx context.Context, player Player) error
	DeletePlayer(ctx context.Context, sessionID, userID string) error
	SetConfirmed(ctx context.Context, sessionID, userID string) error
	UpdateSession(ctx context.Context, session Session) error
}

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (users.User, error)
}

type GameCatalog interface {
	FindGameByID(ctx context.Context, id string) (catalog.Game, error)
}

type Service struct {
	repo   SessionRepository
	users  UserDirectory
	games  GameCatalog
	clock  clock.Clock
	logger *slog.Logger
}

func NewService(repo SessionRepository, users UserDirectory, games GameCatalog, clk clock.Clock) *Service {
	return &Service{
		repo:   repo,
		users:  users,
		games:  games,
		clock:  clk,
		logger: slog.Default().With("component", "session"),
	}
}

func (s *Service) FindSessionByID(ctx context.Context, id string) (Session, error) {
	return s.repo.GetSessionByID(ctx, id)
}

// ListSessions returns every session, or only those in status when it is not empty.
func (s *Service) ListSessions(ctx context.Context, status Status) ([]Session, error) {
	if status == "" {
		return s.repo.GetSessions(ctx)
	}

	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	return s.repo.GetSessionsByStatus(ctx, status)
}

// ListUpcoming returns scheduled sessions starting today or later, earliest first.
func (s *Service) ListUpcoming(ctx context.Context) ([]Session, error) {
	sessions, err := s.repo.GetSessionsByStatus(ctx, StatusScheduled)

	if err != nil {
		return nil, err
	}

	today := clock.Today(s.clock)
	upcoming := slices.DeleteFunc(sessions, func(session Session) bool {
		return session.StartDate.Before(today)
	})

	SortByStart(upcoming)

	return upcoming, nil
}

func (s *Service) ListToday(ctx context.Context) ([]Session, error) {
	return s.ListActiveOn(ctx, clock.Today(s.clock))
}

// ListActiveOn returns the sessions whose date span covers date.
func (s *Service) ListActiveOn(ctx context.Context, date time.Time) ([]Session, error) {
	sessions, err := s.repo.GetSessions(ctx)

	if err != nil {
		return nil, err
	}

	date = clock.DateOf(date)

	return slices.DeleteFunc(sessions, func(session Session) bool {
		return !session.Covers(date)
	}), nil
}

// ListBetween returns the sessions overlapping [start, end].
func (s *Service) ListBetween(ctx context.Context, start, end time.Time) ([]Session, error) {
	sessions, err := s.repo.GetSessions(ctx)

	if err != nil {
		return nil, err
	}

	start, end = clock.DateOf(start), clock.DateOf(end)

	return slices.DeleteFunc(sessions, func(session Session) bool {
		return session.EndDate.Before(start) || session.StartDate.After(end)
	}), nil
}

func (s *Service) ListByCreator(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.GetSessionsByCreator(ctx, userID)
}

func (s *Service) ListByPlayer(ctx context.Context, userID string) ([]Session, error) {
	return s.repo.GetSessionsByPlayer(ctx, userID)
}

func (s *Service) ListByGame(ctx context.Context, gameID string) ([]Session, error) {
	return s.repo.GetSessionsByGame(ctx, gameID)
}

// CreateSession schedules a new session and registers its creator as the first,
// already confirmed, player.
func (s *Service) CreateSession(ctx context.Context, session Session, creator users.User) (Session, error) {
	today := clock.Today(s.clock)
	session = normalize(session)

	if err := validate(session); err != nil {
		return Session{}, err
	}

	if session.StartDate.Before(today) {
		return Session{}, fmt.Errorf("%w: start date cannot be in the past", ErrInvalidSession)
	}

	if err := s.attachGame(ctx, &session); err != nil {
		return Session{}, err
	}

	session.CreatorID = creator.ID
	session.CreatorName = creator.DisplayName()
	session.Status = StatusScheduled

	inserted, err := s.repo.InsertSession(ctx, session, Player{
		UserID:    creator.ID,
		Username:  creator.Username,
		JoinDate:  today,
		Confirmed: true,
	})

	if err != nil {
		return Session{}, err
	}

	s.logger.Info("session created", "session", inserted.ID, "title", inserted.Title, "game", inserted.DisplayGameName())

	return inserted, nil
}

// UpdateSession edits a session's details. Capacity cannot drop below the players
// already confirmed.
func (s *Service) UpdateSession(ctx context.Context, updated Session, actor users.User) error {
	updated = normalize(updated)

	if err := validate(updated); err != nil {
		return err
	}

	if err := s.attachGame(ctx, &updated); err != nil {
		return err
	}

	return s.repo.WithSessionLock(ctx, updated.ID, func(tx SessionTx, current Session) error {
		if !allowed(current, actor) {
			return ErrNotAllowed
		}

		confirmed, err := tx.CountConfirmed(ctx, current.ID)

		if err != nil {
			return err
		}

		if updated.MaxPlayers < confirmed {
			return fmt.Errorf("%w: %d players are already confirmed", ErrInvalidSession, confirmed)
		}

		return tx.UpdateSession(ctx, updated)
	})
}

// SetStatus moves a session to any of the four statuses.
func (s *Service) SetStatus(ctx context.Context, id string, status Status, actor users.User) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	session, err := s.repo.GetSessionByID(ctx, id)

	if err != nil {
		return err
	}

	if !allowed(session, actor) {
		return ErrNotAllowed
	}

	if err := s.repo.SetSessionStatus(ctx, id, status); err != nil {
		return err
	}

	s.logger.Info("session status changed", "session", id, "from", session.Status, "to", status)

	return nil
}

func (s *Service) DeleteSession(ctx context.Context, id string, actor users.User) error {
	session, err := s.repo.GetSessionByID(ctx, id)

	if err != nil {
		return err
	}

	if !allowed(session, actor) {
		return ErrNotAllowed
	}

	if err := s.repo.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Info("session deleted", "session", id, "title", session.Title)

	return nil
}

// FinishExpiredSessions marks scheduled sessions whose end has passed as finished and
// returns how many were updated.
func (s *Service) FinishExpiredSessions(ctx context.Context) (int, error) {
	scheduled, err := s.repo.GetSessionsByStatus(ctx, StatusScheduled)

	if err != nil {
		return 0, err
	}

	now := s.clock.Now()
	finished := 0
	var errs []error

	for _, session := range scheduled {
		if !session.HasExpired(now) {
			continue
		}

		if err := s.repo.SetSessionStatus(ctx, session.ID, StatusFinished); err != nil {
			s.logger.Error("failed to finish expired session", "session", session.ID, "err", err)
			errs = append(errs, err)
			continue
		}

		s.logger.Info("session finished on expiry", "session", session.ID, "title", session.Title)
		finished++
	}

	return finished, errors.Join(errs...)
}

// AddPlayer registers an unconfirmed player. It reports false when the session or user
// does not exist, the user is already registered, or the session is full.
func (s *Service) AddPlayer(ctx context.Context, sessionID, userID string) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)

	if errors.Is(err, users.ErrUserNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	added := false

	err = s.repo.WithSessionLock(ctx, sessionID, func(tx SessionTx, session Session) error {
		_, err := tx.GetPlayer(ctx, sessionID, userID)

		if err == nil {
			s.logger.Debug("player already registered", "session", sessionID, "user", userID)
			return nil
		}

		if !errors.Is(err, ErrPlayerNotFound) {
			return err
		}

		confirmed, err := tx.CountConfirmed(ctx, sessionID)

		if err != nil {
			return err
		}

		if confirmed >= session.MaxPlayers {
			s.logger.Debug("session is full", "session", sessionID, "confirmed", confirmed)
			return nil
		}

		err = tx.InsertPlayer(ctx, Player{
			SessionID: sessionID,
			UserID:    userID,
			Username:  user.Username,
			JoinDate:  clock.Today(s.clock),
			Confirmed: false,
		})

		if err != nil {
			return err
		}

		added = true

		return nil
	})

	if errors.Is(err, ErrSessionNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return added, nil
}

// RemovePlayer deletes a roster row, confirmed or not. It reports false when the user is
// not registered.
func (s *Service) RemovePlayer(ctx context.Context, sessionID, userID string) (bool, error) {
	removed := false

	err := s.repo.WithSessionLock(ctx, sessionID, func(tx SessionTx, session Session) error {
		if _, err := tx.GetPlayer(ctx, sessionID, userID); err != nil {
			if errors.Is(err, ErrPlayerNotFound) {
				return nil
			}
			return err
		}

		if err := tx.DeletePlayer(ctx, sessionID, userID); err != nil {
			return err
		}

		removed = true

		return nil
	})

	if errors.Is(err, ErrSessionNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return removed, nil
}

// ConfirmPlayer marks a registered player as attending. Capacity is checked here, against
// the confirmed count before the flip. Confirming an already confirmed player succeeds
// without changes.
func (s *Service) ConfirmPlayer(ctx context.Context, sessionID, userID string) (bool, error) {
	confirmed := false

	err := s.repo.WithSessionLock(ctx, sessionID, func(tx SessionTx, session Session) error {
		player, err := tx.GetPlayer(ctx, sessionID, userID)

		if errors.Is(err, ErrPlayerNotFound) {
			return nil
		}

		if err != nil {
			return err
		}

		if player.Confirmed {
			confirmed = true
			return nil
		}

		count, err := tx.CountConfirmed(ctx, sessionID)

		if err != nil {
			return err
		}

		if count >= session.MaxPlayers {
			s.logger.Debug("cannot confirm, session is full", "session", sessionID, "user", userID)
			return nil
		}

		if err := tx.SetConfirmed(ctx, sessionID, userID); err != nil {
			return err
		}

		confirmed = true

		return nil
	})

	if errors.Is(err, ErrSessionNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return confirmed, nil
}

func (s *Service) ConfirmedCount(ctx context.Context, sessionID string) (int, error) {
	session, err := s.repo.GetSessionByID(ctx, sessionID)

	if err != nil {
		return 0, err
	}

	return session.ConfirmedCount(), nil
}

func (s *Service) IsFull(ctx context.Context, sessionID string) (bool, error) {
	session, err := s.repo.GetSessionByID(ctx, sessionID)

	if err != nil {
		return false, err
	}

	return session.IsFull(), nil
}

// CanManage reports whether actor may edit, delete or confirm players of a session.
func CanManage(session Session, actor users.User) bool {
	return allowed(session, actor)
}

// SortByStart orders sessions by start date then start time.
func SortByStart(sessions []Session) {
	slices.SortStableFunc(sessions, func(a, b Session) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return cmp.Compare(a.StartTime, b.StartTime)
	})
}

func (s *Service) attachGame(ctx context.Context, session *Session) error {
	if session.GameID == nil {
		session.GameName = ""
		return nil
	}

	game, err := s.games.FindGameByID(ctx, *session.GameID)

	if err != nil {
		return err
	}

	session.GameName = game.Name

	return nil
}

func allowed(session Session, actor users.User) bool {
	return actor.IsAdmin() || session.CreatorID == actor.ID
}

func normalize(session Session) Session {
	session.Title = strings.TrimSpace(session.Title)
	session.CustomGameName = strings.TrimSpace(session.CustomGameName)
	session.StartTime = strings.TrimSpace(session.StartTime)
	session.EndTime = strings.TrimSpace(session.EndTime)
	session.StartDate = clock.DateOf(session.StartDate)

	if session.EndDate.IsZero() {
		session.EndDate = session.StartDate
	} else {
		session.EndDate = clock.DateOf(session.EndDate)
	}

	if session.GameID != nil && strings.TrimSpace(*session.GameID) == "" {
		session.GameID = nil
	}

	return session
}

func validate(session Session) error {
	if session.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidSession)
	}

	if session.GameID == nil && session.CustomGameName == "" {
		return fmt.Errorf("%w: game name is required", ErrInvalidSession)
	}

	if session.GameID != nil && session.CustomImagePath != "" {
		return fmt.Errorf("%w: custom image is only allowed for custom games", ErrInvalidSession)
	}

	if session.MaxPlayers < 1 {
		return fmt.Errorf("%w: max players must be at least 1", ErrInvalidSession)
	}

	if session.StartDate.Year() <= 1 {
		return fmt.Errorf("%w: start date is required", ErrInvalidSession)
	}

	if session.EndDate.Before(session.StartDate) {
		return fmt.Errorf("%w: end date cannot be before start date", ErrInvalidSession)
	}

	start, err := time.Parse(TimeLayout, session.StartTime)

	if err != nil {
		return fmt.Errorf("%w: start time must be HH:MM", ErrInvalidSession)
	}

	if session.EndTime == "" {
		return nil
	}

	end, err := time.Parse(TimeLayout, session.EndTime)

	if err != nil {
		return fmt.Errorf("%w: end time must be HH:MM", ErrInvalidSession)
	}

	if !session.IsMultiDay() && !end.After(start) {
		return fmt.Errorf("%w: end time must be after start time for same-day sessions", ErrInvalidSession)
	}

	return nil
}
