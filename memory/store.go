package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/loan"
	"github.com/hanksha/boardgame-club-backend/session"
	"github.com/hanksha/boardgame-club-backend/users"
)

// Store keeps the whole club in process memory. Reads and writes of the maps are guarded
// by mu; the check-then-act sequences of loans and rosters additionally hold a mutex per
// game or per session for the duration of the closure.
type Store struct {
	mu sync.RWMutex

	users       map[string]users.User
	usernames   map[string]string
	games       map[string]catalog.Game
	sessions    map[string]session.Session
	players     map[string][]session.Player
	loans       map[string]loan.Loan
	sessionKeys *keyedMutex
	gameKeys    *keyedMutex
}

func New() *Store {
	return &Store{
		users:       make(map[string]users.User),
		usernames:   make(map[string]string),
		games:       make(map[string]catalog.Game),
		sessions:    make(map[string]session.Session),
		players:     make(map[string][]session.Player),
		loans:       make(map[string]loan.Loan),
		sessionKeys: newKeyedMutex(),
		gameKeys:    newKeyedMutex(),
	}
}

var (
	_ users.UserRepository      = (*Store)(nil)
	_ catalog.GameRepository    = (*Store)(nil)
	_ session.SessionRepository = (*Store)(nil)
	_ loan.LoanRepository       = (*Store)(nil)
)

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock blocks until key is free and returns its unlock function.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// writes queues mutations of a locked closure and applies them together on commit.
type writes []func()

func (s *Store) commit(w writes) {
	if len(w) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, apply := range w {
		apply()
	}
}

func newID() string {
	return uuid.NewString()
}

// User operations

// AddUser registers a user, assigning an id when it has none.
func (s *Store) AddUser(user users.User) users.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = newID()
	}

	s.users[user.ID] = user
	s.usernames[user.Username] = user.ID

	return user
}

func (s *Store) FindByID(ctx context.Context, id string) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return users.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) FindByUsername(ctx context.Context, username string) (users.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.usernames[username]
	if !ok {
		return users.User{}, users.ErrUserNotFound
	}
	return s.users[id], nil
}
