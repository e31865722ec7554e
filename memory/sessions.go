package memory

import (
	"context"
	"slices"

	"github.com/hanksha/boardgame-club-backend/session"
)

func (s *Store) GetSessions(ctx context.Context) ([]session.Session, error) {
	return s.filterSessions(func(session.Session) bool { return true }), nil
}

func (s *Store) GetSessionsByStatus(ctx context.Context, status session.Status) ([]session.Session, error) {
	return s.filterSessions(func(sess session.Session) bool { return sess.Status == status }), nil
}

func (s *Store) GetSessionsByGame(ctx context.Context, gameID string) ([]session.Session, error) {
	return s.filterSessions(func(sess session.Session) bool {
		return sess.GameID != nil && *sess.GameID == gameID
	}), nil
}

func (s *Store) GetSessionsByCreator(ctx context.Context, userID string) ([]session.Session, error) {
	return s.filterSessions(func(sess session.Session) bool { return sess.CreatorID == userID }), nil
}

func (s *Store) GetSessionsByPlayer(ctx context.Context, userID string) ([]session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := []session.Session{}
	for id, sess := range s.sessions {
		if slices.ContainsFunc(s.players[id], func(p session.Player) bool { return p.UserID == userID }) {
			sessions = append(sessions, s.hydrate(sess))
		}
	}

	session.SortByStart(sessions)

	return sessions, nil
}

func (s *Store) GetSessionByID(ctx context.Context, id string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return session.Session{}, session.ErrSessionNotFound
	}
	return s.hydrate(sess), nil
}

func (s *Store) InsertSession(ctx context.Context, sess session.Session, creator session.Player) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.ID = newID()
	sess.Players = nil
	creator.SessionID = sess.ID

	s.sessions[sess.ID] = sess
	s.players[sess.ID] = []session.Player{creator}

	return s.hydrate(sess), nil
}

func (s *Store) SetSessionStatus(ctx context.Context, id string, status session.Status) error {
	unlock := s.sessionKeys.Lock(id)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return session.ErrSessionNotFound
	}

	sess.Status = status
	s.sessions[id] = sess

	return nil
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	unlock := s.sessionKeys.Lock(id)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return session.ErrSessionNotFound
	}

	delete(s.sessions, id)
	delete(s.players, id)

	return nil
}

// WithSessionLock runs fn while holding the session's mutex. Writes made through tx are
// applied only when fn returns nil.
func (s *Store) WithSessionLock(ctx context.Context, id string, fn func(tx session.SessionTx, sess session.Session) error) error {
	unlock := s.sessionKeys.Lock(id)
	defer unlock()

	locked, err := s.GetSessionByID(ctx, id)
	if err != nil {
		return err
	}

	tx := &sessionTx{store: s}
	if err := fn(tx, locked); err != nil {
		return err
	}

	s.commit(tx.writes)

	return nil
}

// hydrate fills the roster and the names joined from users and games. Callers hold mu.
func (s *Store) hydrate(sess session.Session) session.Session {
	if creator, ok := s.users[sess.CreatorID]; ok {
		sess.CreatorName = creator.DisplayName()
	}

	sess.GameName = ""
	if sess.GameID != nil {
		sess.GameName = s.games[*sess.GameID].Name
	}

	roster := s.players[sess.ID]
	sess.Players = make([]session.Player, 0, len(roster))
	for _, p := range roster {
		p.Username = s.users[p.UserID].Username
		sess.Players = append(sess.Players, p)
	}

	return sess
}

func (s *Store) filterSessions(keep func(session.Session) bool) []session.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := []session.Session{}
	for _, sess := range s.sessions {
		if keep(sess) {
			sessions = append(sessions, s.hydrate(sess))
		}
	}

	session.SortByStart(sessions)

	return sessions
}

type sessionTx struct {
	store  *Store
	writes writes
}

func (t *sessionTx) GetPlayer(ctx context.Context, sessionID, userID string) (session.Player, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for _, p := range t.store.players[sessionID] {
		if p.UserID == userID {
			p.Username = t.store.users[userID].Username
			return p, nil
		}
	}

	return session.Player{}, session.ErrPlayerNotFound
}

func (t *sessionTx) CountConfirmed(ctx context.Context, sessionID string) (int, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	count := 0
	for _, p := range t.store.players[sessionID] {
		if p.Confirmed {
			count++
		}
	}

	return count, nil
}

func (t *sessionTx) InsertPlayer(ctx context.Context, player session.Player) error {
	t.writes = append(t.writes, func() {
		if _, ok := t.store.sessions[player.SessionID]; !ok {
			return
		}
		t.store.players[player.SessionID] = append(t.store.players[player.SessionID], player)
	})
	return nil
}

func (t *sessionTx) DeletePlayer(ctx context.Context, sessionID, userID string) error {
	t.writes = append(t.writes, func() {
		if _, ok := t.store.sessions[sessionID]; !ok {
			return
		}
		t.store.players[sessionID] = slices.DeleteFunc(slices.Clone(t.store.players[sessionID]), func(p session.Player) bool {
			return p.UserID == userID
		})
	})
	return nil
}

func (t *sessionTx) SetConfirmed(ctx context.Context, sessionID, userID string) error {
	t.writes = append(t.writes, func() {
		if _, ok := t.store.sessions[sessionID]; !ok {
			return
		}
		roster := slices.Clone(t.store.players[sessionID])
		for i := range roster {
			if roster[i].UserID == userID {
				roster[i].Confirmed = true
			}
		}
		t.store.players[sessionID] = roster
	})
	return nil
}

func (t *sessionTx) UpdateSession(ctx context.Context, sess session.Session) error {
	t.writes = append(t.writes, func() {
		current, ok := t.store.sessions[sess.ID]
		if !ok {
			return
		}

		current.GameID = sess.GameID
		current.Title = sess.Title
		current.Description = sess.Description
		current.CustomGameName = sess.CustomGameName
		current.CustomGameDescription = sess.CustomGameDescription
		current.CustomImagePath = sess.CustomImagePath
		current.StartDate = sess.StartDate
		current.StartTime = sess.StartTime
		current.EndDate = sess.EndDate
		current.EndTime = sess.EndTime
		current.MaxPlayers = sess.MaxPlayers

		t.store.sessions[sess.ID] = current
	})
	return nil
}
