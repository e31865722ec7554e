package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hanksha/boardgame-club-backend/clock"
)

type GameRepository interface {
	GetGames(ctx context.Context) ([]Game, error)
	GetGamesByAvailable(ctx context.Context, available bool) ([]Game, error)
	GetGameByID(ctx context.Context, id string) (Game, error)
	InsertGame(ctx context.Context, game Game) (Game, error)
	UpdateGame(ctx context.Context, game Game) error
}

type Service struct {
	repo   GameRepository
	logger *slog.Logger
}

func NewService(repo GameRepository) *Service {
	return &Service{repo: repo, logger: slog.Default().With("component", "catalog")}
}

func (s *Service) ListGames(ctx context.Context) ([]Game, error) {
	return s.repo.GetGames(ctx)
}

func (s *Service) FindByAvailable(ctx context.Context, available bool) ([]Game, error) {
	return s.repo.GetGamesByAvailable(ctx, available)
}

func (s *Service) FindGameByID(ctx context.Context, id string) (Game, error) {
	return s.repo.GetGameByID(ctx, id)
}

// CreateGame adds a new copy to the library. New games are always available.
func (s *Service) CreateGame(ctx context.Context, game Game) (Game, error) {
	game.Name = strings.TrimSpace(game.Name)

	if err := validate(game); err != nil {
		return Game{}, err
	}

	if game.AcquisitionDate.IsZero() {
		game.AcquisitionDate = clock.DateOf(time.Now())
	}

	game.Available = true

	inserted, err := s.repo.InsertGame(ctx, game)

	if err != nil {
		return Game{}, err
	}

	s.logger.Info("game added to catalog", "game", inserted.ID, "name", inserted.Name)

	return inserted, nil
}

// UpdateGame changes descriptive fields only. Availability belongs to the loan ledger.
func (s *Service) UpdateGame(ctx context.Context, updated Game) error {
	game, err := s.repo.GetGameByID(ctx, updated.ID)

	if err != nil {
		return err
	}

	game.Name = strings.TrimSpace(updated.Name)
	game.Description = updated.Description
	game.MinPlayers = updated.MinPlayers
	game.MaxPlayers = updated.MaxPlayers
	game.DurationMinutes = updated.DurationMinutes
	game.Category = updated.Category
	game.State = updated.State

	if err := validate(game); err != nil {
		return err
	}

	return s.repo.UpdateGame(ctx, game)
}

func validate(game Game) error {
	if game.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGame)
	}

	if game.MinPlayers < 1 || game.MaxPlayers < game.MinPlayers {
		return fmt.Errorf("%w: player range %d-%d", ErrInvalidGame, game.MinPlayers, game.MaxPlayers)
	}

	if game.DurationMinutes < 1 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidGame)
	}

	if game.State != "" && !game.State.Valid() {
		return fmt.Errorf("%w: unknown state '%v'", ErrInvalidGame, game.State)
	}

	return nil
}
