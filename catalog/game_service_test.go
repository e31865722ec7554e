package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hanksha/boardgame-club-backend/catalog"
	catalog_mocks "github.com/hanksha/boardgame-club-backend/catalog/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var catan = catalog.Game{
	ID:              "g1",
	Name:            "Catan",
	Description:     "Trade and build",
	MinPlayers:      3,
	MaxPlayers:      4,
	DurationMinutes: 90,
	Category:        "strategy",
	Available:       true,
	AcquisitionDate: time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
	State:           catalog.StateGood,
}

type testDeps struct {
	repo    *catalog_mocks.MockGameRepository
	service *catalog.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := catalog_mocks.NewMockGameRepository(ctrl)

	return ctrl, testDeps{repo: repo, service: catalog.NewService(repo), ctx: context.Background()}
}

func TestFindByAvailable(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().GetGamesByAvailable(deps.ctx, true).Return([]catalog.Game{catan}, nil).Times(1)

	games, err := deps.service.FindByAvailable(deps.ctx, true)

	require.NoError(t, err)
	require.Equal(t, []catalog.Game{catan}, games)
}

func TestCreateGame(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		toInsert := catan
		toInsert.ID = ""
		toInsert.Name = "  Catan "
		toInsert.Available = false

		expected := catan
		expected.ID = ""

		deps.repo.EXPECT().InsertGame(deps.ctx, expected).Return(catan, nil).Times(1)

		game, err := deps.service.CreateGame(deps.ctx, toInsert)

		require.NoError(t, err)
		require.Equal(t, catan, game)
	})

	t.Run("invalid player range", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		toInsert := catan
		toInsert.MinPlayers = 5

		deps.repo.EXPECT().InsertGame(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateGame(deps.ctx, toInsert)

		require.ErrorIs(t, err, catalog.ErrInvalidGame)
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		toInsert := catan
		toInsert.Name = "   "

		deps.repo.EXPECT().InsertGame(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateGame(deps.ctx, toInsert)

		require.ErrorIs(t, err, catalog.ErrInvalidGame)
	})
}

func TestUpdateGame(t *testing.T) {
	t.Run("availability is never written", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		loaned := catan
		loaned.Available = false

		updated := catan
		updated.Name = "Catan 5th edition"
		updated.Available = true

		expected := loaned
		expected.Name = "Catan 5th edition"

		deps.repo.EXPECT().GetGameByID(deps.ctx, "g1").Return(loaned, nil).Times(1)
		deps.repo.EXPECT().UpdateGame(deps.ctx, expected).Return(nil).Times(1)

		require.NoError(t, deps.service.UpdateGame(deps.ctx, updated))
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetGameByID(deps.ctx, "g1").Return(catalog.Game{}, catalog.ErrGameNotFound).Times(1)
		deps.repo.EXPECT().UpdateGame(gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, deps.service.UpdateGame(deps.ctx, catan), catalog.ErrGameNotFound)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetGameByID(deps.ctx, "g1").Return(catan, nil).Times(1)
		deps.repo.EXPECT().UpdateGame(deps.ctx, catan).Return(errors.New("repo error")).Times(1)

		require.Error(t, deps.service.UpdateGame(deps.ctx, catan))
	})
}
