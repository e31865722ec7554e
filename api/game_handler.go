package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/conflict"
)

type GameService interface {
	ListGames(ctx context.Context) ([]catalog.Game, error)
	FindByAvailable(ctx context.Context, available bool) ([]catalog.Game, error)
	FindGameByID(ctx context.Context, id string) (catalog.Game, error)
	CreateGame(ctx context.Context, game catalog.Game) (catalog.Game, error)
	UpdateGame(ctx context.Context, game catalog.Game) error
}

type ConflictService interface {
	UpcomingSessionsForGame(ctx context.Context, gameID string) ([]conflict.Summary, error)
	SuggestReturnDate(ctx context.Context, gameID string, proposed time.Time) (time.Time, error)
	CheckConflicts(ctx context.Context, gameID string, proposed time.Time) (conflict.Report, error)
}

type GameHandler struct {
	games     GameService
	conflicts ConflictService
}

func NewGameHandler(games GameService, conflicts ConflictService) *GameHandler {
	return &GameHandler{games: games, conflicts: conflicts}
}

func (h *GameHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.POST("", adminOnly, h.Create)
	rg.PUT("/:id", adminOnly, h.Update)
	rg.GET("/:id/sessions", h.UpcomingSessions)
	rg.GET("/:id/conflicts", h.CheckConflicts)
	rg.GET("/:id/suggested-return-date", h.SuggestReturnDate)
}

type gameRequest struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	MinPlayers      int               `json:"minPlayers"`
	MaxPlayers      int               `json:"maxPlayers"`
	DurationMinutes int               `json:"durationMinutes"`
	Category        string            `json:"category"`
	AcquisitionDate string            `json:"acquisitionDate"`
	State           catalog.GameState `json:"state"`
}

func (r gameRequest) toGame() (catalog.Game, error) {
	game := catalog.Game{
		Name:            r.Name,
		Description:     r.Description,
		MinPlayers:      r.MinPlayers,
		MaxPlayers:      r.MaxPlayers,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		State:           r.State,
	}

	if r.AcquisitionDate != "" {
		date, err := clock.ParseDate(r.AcquisitionDate)
		if err != nil {
			return catalog.Game{}, err
		}
		game.AcquisitionDate = date
	}

	return game, nil
}

func (h *GameHandler) List(c *gin.Context) {
	var games []catalog.Game
	var err error

	if raw := c.Query("available"); raw != "" {
		available, parseErr := strconv.ParseBool(raw)

		if parseErr != nil {
			badRequest(c, parseErr, "available must be true or false")
			return
		}

		games, err = h.games.FindByAvailable(c.Request.Context(), available)
	} else {
		games, err = h.games.ListGames(c.Request.Context())
	}

	if err != nil {
		respondError(c, err, "failed to retrieve games")
		return
	}

	c.IndentedJSON(http.StatusOK, games)
}

func (h *GameHandler) GetByID(c *gin.Context) {
	game, err := h.games.FindGameByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch game")
		return
	}

	c.IndentedJSON(http.StatusOK, game)
}

func (h *GameHandler) Create(c *gin.Context) {
	var req gameRequest

	if err := c.BindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	game, err := req.toGame()

	if err != nil {
		badRequest(c, err, "acquisitionDate must be YYYY-MM-DD")
		return
	}

	inserted, err := h.games.CreateGame(c.Request.Context(), game)

	if err != nil {
		respondError(c, err, "failed to create game")
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *GameHandler) Update(c *gin.Context) {
	var req gameRequest

	if err := c.BindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	game, err := req.toGame()

	if err != nil {
		badRequest(c, err, "acquisitionDate must be YYYY-MM-DD")
		return
	}

	game.ID = c.Param("id")

	if err := h.games.UpdateGame(c.Request.Context(), game); err != nil {
		respondError(c, err, "failed to update game")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "game updated"})
}

func (h *GameHandler) UpcomingSessions(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.games.FindGameByID(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to fetch game")
		return
	}

	sessions, err := h.conflicts.UpcomingSessionsForGame(c.Request.Context(), id)

	if err != nil {
		respondError(c, err, "failed to retrieve sessions")
		return
	}

	c.IndentedJSON(http.StatusOK, sessions)
}

func (h *GameHandler) CheckConflicts(c *gin.Context) {
	id := c.Param("id")
	proposed, err := clock.ParseDate(c.Query("returnDate"))

	if err != nil {
		badRequest(c, err, "returnDate must be YYYY-MM-DD")
		return
	}

	if _, err := h.games.FindGameByID(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to fetch game")
		return
	}

	report, err := h.conflicts.CheckConflicts(c.Request.Context(), id, proposed)

	if err != nil {
		respondError(c, err, "failed to check conflicts")
		return
	}

	c.IndentedJSON(http.StatusOK, report)
}

func (h *GameHandler) SuggestReturnDate(c *gin.Context) {
	id := c.Param("id")
	proposed, err := clock.ParseDate(c.Query("proposed"))

	if err != nil {
		badRequest(c, err, "proposed must be YYYY-MM-DD")
		return
	}

	if _, err := h.games.FindGameByID(c.Request.Context(), id); err != nil {
		respondError(c, err, "failed to fetch game")
		return
	}

	suggested, err := h.conflicts.SuggestReturnDate(c.Request.Context(), id, proposed)

	if err != nil {
		respondError(c, err, "failed to suggest a return date")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"proposed":  proposed.Format(time.DateOnly),
		"suggested": suggested.Format(time.DateOnly),
		"changed":   !suggested.Equal(proposed),
	})
}
