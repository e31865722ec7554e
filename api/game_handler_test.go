package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/api"
	mock_api "github.com/hanksha/boardgame-club-backend/api/mocks"
	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/conflict"
	"github.com/hanksha/boardgame-club-backend/users"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var catan = catalog.Game{
	ID:              "g1",
	Name:            "Catan",
	MinPlayers:      3,
	MaxPlayers:      4,
	DurationMinutes: 90,
	Available:       true,
	AcquisitionDate: clock.Date(2023, time.March, 1),
	State:           catalog.StateGood,
}

type gameMocks struct {
	games     *mock_api.MockGameService
	conflicts *mock_api.MockConflictService
}

func setupGameRouter(t *testing.T, user users.User) (*gin.Engine, *gomock.Controller, gameMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mocks := gameMocks{
		games:     mock_api.NewMockGameService(ctrl),
		conflicts: mock_api.NewMockConflictService(ctrl),
	}
	rg := router.Group("/api/v1/games")
	rg.Use(setUserInContext(user))
	api.NewGameHandler(mocks.games, mocks.conflicts).Register(rg)

	return router, ctrl, mocks
}

func TestListGames(t *testing.T) {
	t.Run("all games", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, member)
		defer ctrl.Finish()

		gamesJson, _ := json.Marshal([]catalog.Game{catan})
		mocks.games.EXPECT().ListGames(gomock.Any()).Return([]catalog.Game{catan}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(gamesJson), w.Body.String())
	})

	t.Run("available only", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, member)
		defer ctrl.Finish()

		mocks.games.EXPECT().FindByAvailable(gomock.Any(), true).Return([]catalog.Game{catan}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games?available=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("bad filter", func(t *testing.T) {
		router, ctrl, _ := setupGameRouter(t, member)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games?available=maybe", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, member)
		defer ctrl.Finish()

		mocks.games.EXPECT().ListGames(gomock.Any()).Return(nil, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
		assert.JSONEq(t, `{"error":"failed to retrieve games"}`, w.Body.String())
	})
}

func TestGetGame(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, member)
		defer ctrl.Finish()

		mocks.games.EXPECT().FindGameByID(gomock.Any(), "nope").Return(catalog.Game{}, catalog.ErrGameNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games/nope", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"game not found"}`, w.Body.String())
	})
}

func TestCreateGame(t *testing.T) {
	body := `{"name":"Catan","minPlayers":3,"maxPlayers":4,"durationMinutes":90,"acquisitionDate":"2023-03-01","state":"GOOD"}`

	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, admin)
		defer ctrl.Finish()

		toCreate := catan
		toCreate.ID = ""
		toCreate.Available = false
		mocks.games.EXPECT().CreateGame(gomock.Any(), toCreate).Return(catan, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/games", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		gameJson, _ := json.Marshal(catan)
		assert.Equal(t, 201, w.Code)
		assert.JSONEq(t, string(gameJson), w.Body.String())
	})

	t.Run("invalid game", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, admin)
		defer ctrl.Finish()

		mocks.games.EXPECT().CreateGame(gomock.Any(), gomock.Any()).Return(catalog.Game{}, catalog.ErrInvalidGame).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/games", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
	})

	t.Run("not an admin", func(t *testing.T) {
		router, ctrl, _ := setupGameRouter(t, extended)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/games", bytes.NewBufferString(body))
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
	})
}

func TestUpdateGame(t *testing.T) {
	router, ctrl, mocks := setupGameRouter(t, admin)
	defer ctrl.Finish()

	mocks.games.EXPECT().UpdateGame(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, g catalog.Game) error {
		assert.Equal(t, "g1", g.ID)
		assert.Equal(t, catalog.StateDamaged, g.State)
		return nil
	}).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/games/g1", bytes.NewBufferString(`{"name":"Catan","minPlayers":3,"maxPlayers":4,"durationMinutes":90,"state":"DAMAGED"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"message":"game updated"}`, w.Body.String())
}

func TestCheckConflicts(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router, ctrl, mocks := setupGameRouter(t, extended)
		defer ctrl.Finish()

		report := conflict.Report{
			HasConflicts:        true,
			UpcomingSessions:    []conflict.Summary{{SessionID: "s1", Title: "Catan weekend"}},
			SuggestedReturnDate: clock.Date(2024, time.June, 9),
			Message:             "This game is scheduled for an upcoming session",
		}
		reportJson, _ := json.Marshal(report)

		mocks.games.EXPECT().FindGameByID(gomock.Any(), "g1").Return(catan, nil).Times(1)
		mocks.conflicts.EXPECT().CheckConflicts(gomock.Any(), "g1", clock.Date(2024, time.June, 11)).Return(report, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games/g1/conflicts?returnDate=2024-06-11", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(reportJson), w.Body.String())
	})

	t.Run("malformed date", func(t *testing.T) {
		router, ctrl, _ := setupGameRouter(t, extended)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/games/g1/conflicts?returnDate=11/06/2024", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 400, w.Code)
		assert.JSONEq(t, `{"error":"returnDate must be YYYY-MM-DD"}`, w.Body.String())
	})
}

func TestSuggestReturnDate(t *testing.T) {
	router, ctrl, mocks := setupGameRouter(t, extended)
	defer ctrl.Finish()

	mocks.games.EXPECT().FindGameByID(gomock.Any(), "g1").Return(catan, nil).Times(1)
	mocks.conflicts.EXPECT().SuggestReturnDate(gomock.Any(), "g1", clock.Date(2024, time.June, 11)).Return(clock.Date(2024, time.June, 9), nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/games/g1/suggested-return-date?proposed=2024-06-11", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"proposed":"2024-06-11","suggested":"2024-06-09","changed":true}`, w.Body.String())
}

func TestUpcomingSessions(t *testing.T) {
	router, ctrl, mocks := setupGameRouter(t, member)
	defer ctrl.Finish()

	mocks.games.EXPECT().FindGameByID(gomock.Any(), "g1").Return(catan, nil).Times(1)
	mocks.conflicts.EXPECT().UpcomingSessionsForGame(gomock.Any(), "g1").Return([]conflict.Summary{}, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/games/g1/sessions", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
