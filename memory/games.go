package memory

import (
	"context"
	"slices"
	"strings"

	"github.com/hanksha/boardgame-club-backend/catalog"
)

func (s *Store) GetGames(ctx context.Context) ([]catalog.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterGames(func(catalog.Game) bool { return true }), nil
}

func (s *Store) GetGamesByAvailable(ctx context.Context, available bool) ([]catalog.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.filterGames(func(g catalog.Game) bool { return g.Available == available }), nil
}

func (s *Store) GetGameByID(ctx context.Context, id string) (catalog.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return catalog.Game{}, catalog.ErrGameNotFound
	}
	return game, nil
}

func (s *Store) InsertGame(ctx context.Context, game catalog.Game) (catalog.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game.ID = newID()
	game.Available = true
	s.games[game.ID] = game

	return game, nil
}

// UpdateGame writes the descriptive fields of a game. Availability is left as stored.
func (s *Store) UpdateGame(ctx context.Context, game catalog.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.games[game.ID]
	if !ok {
		return catalog.ErrGameNotFound
	}

	game.Available = current.Available
	s.games[game.ID] = game

	return nil
}

func (s *Store) filterGames(keep func(catalog.Game) bool) []catalog.Game {
	games := []catalog.Game{}
	for _, g := range s.games {
		if keep(g) {
			games = append(games, g)
		}
	}

	slices.SortFunc(games, func(a, b catalog.Game) int {
		return strings.Compare(a.Name, b.Name)
	})

	return games
}
