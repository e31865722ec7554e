package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/session"
	"github.com/hanksha/boardgame-club-backend/users"
)

type SessionService interface {
	ListSessions(ctx context.Context, status session.Status) ([]session.Session, error)
	ListUpcoming(ctx context.Context) ([]session.Session, error)
	ListToday(ctx context.Context) ([]session.Session, error)
	ListByPlayer(ctx context.Context, userID string) ([]session.Session, error)
	FindSessionByID(ctx context.Context, id string) (session.Session, error)
	CreateSession(ctx context.Context, s session.Session, creator users.User) (session.Session, error)
	UpdateSession(ctx context.Context, s session.Session, actor users.User) error
	SetStatus(ctx context.Context, id string, status session.Status, actor users.User) error
	DeleteSession(ctx context.Context, id string, actor users.User) error
	AddPlayer(ctx context.Context, sessionID, userID string) (bool, error)
	RemovePlayer(ctx context.Context, sessionID, userID string) (bool, error)
	ConfirmPlayer(ctx context.Context, sessionID, userID string) (bool, error)
	FinishExpiredSessions(ctx context.Context) (int, error)
}

type SessionHandler struct {
	service SessionService
}

func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

func (h *SessionHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/upcoming", h.ListUpcoming)
	rg.GET("/today", h.ListToday)
	rg.GET("/mine", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.POST("/finish-expired", AdminOnly(), h.FinishExpired)
	rg.PUT("/:id", h.Update)
	rg.PUT("/:id/status", h.SetStatus)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/join", h.Join)
	rg.POST("/:id/leave", h.Leave)
	rg.PUT("/:id/players/:userId/confirm", h.Confirm)
}

type sessionRequest struct {
	GameID                *string `json:"gameId"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	CustomGameName        string  `json:"customGameName"`
	CustomGameDescription string  `json:"customGameDescription"`
	CustomImagePath       string  `json:"customImagePath"`
	StartDate             string  `json:"startDate"`
	StartTime             string  `json:"startTime"`
	EndDate               string  `json:"endDate"`
	EndTime               string  `json:"endTime"`
	MaxPlayers            int     `json:"maxPlayers"`
}

func (r sessionRequest) toSession() (session.Session, error) {
	s := session.Session{
		GameID:                r.GameID,
		Title:                 r.Title,
		Description:           r.Description,
		CustomGameName:        r.CustomGameName,
		CustomGameDescription: r.CustomGameDescription,
		CustomImagePath:       r.CustomImagePath,
		StartTime:             r.StartTime,
		EndTime:               r.EndTime,
		MaxPlayers:            r.MaxPlayers,
	}

	start, err := clock.ParseDate(r.StartDate)
	if err != nil {
		return session.Session{}, err
	}
	s.StartDate = start

	if r.EndDate != "" {
		end, err := clock.ParseDate(r.EndDate)
		if err != nil {
			return session.Session{}, err
		}
		s.EndDate = end
	}

	return s, nil
}

func (h *SessionHandler) bindSession(c *gin.Context) (session.Session, bool) {
	var req sessionRequest

	if err := c.BindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return session.Session{}, false
	}

	s, err := req.toSession()

	if err != nil {
		badRequest(c, err, "dates must be YYYY-MM-DD")
		return session.Session{}, false
	}

	return s, true
}

func (h *SessionHandler) List(c *gin.Context) {
	status := session.Status(strings.ToUpper(c.Query("status")))
	sessions, err := h.service.ListSessions(c.Request.Context(), status)

	if err != nil {
		respondError(c, err, "failed to retrieve sessions")
		return
	}

	c.IndentedJSON(http.StatusOK, sessions)
}

func (h *SessionHandler) ListUpcoming(c *gin.Context) {
	sessions, err := h.service.ListUpcoming(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve sessions")
		return
	}

	c.IndentedJSON(http.StatusOK, sessions)
}

func (h *SessionHandler) ListToday(c *gin.Context) {
	sessions, err := h.service.ListToday(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to retrieve sessions")
		return
	}

	c.IndentedJSON(http.StatusOK, sessions)
}

func (h *SessionHandler) ListMine(c *gin.Context) {
	sessions, err := h.service.ListByPlayer(c.Request.Context(), currentUser(c).ID)

	if err != nil {
		respondError(c, err, "failed to retrieve sessions")
		return
	}

	c.IndentedJSON(http.StatusOK, sessions)
}

func (h *SessionHandler) GetByID(c *gin.Context) {
	s, err := h.service.FindSessionByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		respondError(c, err, "failed to fetch session")
		return
	}

	c.IndentedJSON(http.StatusOK, s)
}

func (h *SessionHandler) Create(c *gin.Context) {
	s, ok := h.bindSession(c)

	if !ok {
		return
	}

	created, err := h.service.CreateSession(c.Request.Context(), s, currentUser(c))

	if err != nil {
		respondError(c, err, "failed to create session")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *SessionHandler) Update(c *gin.Context) {
	s, ok := h.bindSession(c)

	if !ok {
		return
	}

	s.ID = c.Param("id")

	if err := h.service.UpdateSession(c.Request.Context(), s, currentUser(c)); err != nil {
		respondError(c, err, "failed to update session")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "session updated"})
}

type statusRequest struct {
	Status session.Status `json:"status"`
}

func (h *SessionHandler) SetStatus(c *gin.Context) {
	var req statusRequest

	if err := c.BindJSON(&req); err != nil {
		badRequest(c, err, "failed to parse JSON body")
		return
	}

	status := session.Status(strings.ToUpper(string(req.Status)))

	if err := h.service.SetStatus(c.Request.Context(), c.Param("id"), status, currentUser(c)); err != nil {
		respondError(c, err, "failed to change session status")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "session status changed"})
}

func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteSession(c.Request.Context(), c.Param("id"), currentUser(c)); err != nil {
		respondError(c, err, "failed to delete session")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "session deleted"})
}

func (h *SessionHandler) Join(c *gin.Context) {
	added, err := h.service.AddPlayer(c.Request.Context(), c.Param("id"), currentUser(c).ID)

	if err != nil {
		respondError(c, err, "failed to join session")
		return
	}

	if !added {
		c.JSON(http.StatusConflict, gin.H{"error": "could not join session: not found, already registered or full"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "joined session"})
}

func (h *SessionHandler) Leave(c *gin.Context) {
	removed, err := h.service.RemovePlayer(c.Request.Context(), c.Param("id"), currentUser(c).ID)

	if err != nil {
		respondError(c, err, "failed to leave session")
		return
	}

	if !removed {
		c.JSON(http.StatusConflict, gin.H{"error": "not registered in this session"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "left session"})
}

// Confirm marks a player as attending. The session creator, an admin or the player
// themself may do it.
func (h *SessionHandler) Confirm(c *gin.Context) {
	user := currentUser(c)
	sessionID := c.Param("id")
	playerID := c.Param("userId")

	s, err := h.service.FindSessionByID(c.Request.Context(), sessionID)

	if err != nil {
		respondError(c, err, "failed to fetch session")
		return
	}

	if playerID != user.ID && !session.CanManage(s, user) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	confirmed, err := h.service.ConfirmPlayer(c.Request.Context(), sessionID, playerID)

	if err != nil {
		respondError(c, err, "failed to confirm player")
		return
	}

	if !confirmed {
		c.JSON(http.StatusConflict, gin.H{"error": "could not confirm player: not registered or session full"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "player confirmed"})
}

func (h *SessionHandler) FinishExpired(c *gin.Context) {
	finished, err := h.service.FinishExpiredSessions(c.Request.Context())

	if err != nil {
		respondError(c, err, "failed to finish expired sessions")
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"finished": finished})
}
