package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/loan"
	"github.com/hanksha/boardgame-club-backend/session"
	"github.com/hanksha/boardgame-club-backend/users"
)

var notFound = []error{
	catalog.ErrGameNotFound,
	session.ErrSessionNotFound,
	session.ErrPlayerNotFound,
	loan.ErrLoanNotFound,
	users.ErrUserNotFound,
}

var invalid = []error{
	catalog.ErrInvalidGame,
	session.ErrInvalidSession,
	session.ErrInvalidStatus,
	loan.ErrInvalidLoanState,
	loan.ErrInvalidReturnDate,
	loan.ErrInvalidStatus,
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError records err on the context and writes the status matching its kind.
// Unexpected errors are answered with fallback instead of their own message.
func respondError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	var loaned *loan.GameAlreadyLoanedError

	switch {
	case errors.As(err, &loaned):
		c.JSON(http.StatusConflict, gin.H{
			"error":   err.Error(),
			"holder":  loaned.HolderUsername,
			"dueDate": loaned.DueDate.Format(time.DateOnly),
		})
	case matches(err, notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case matches(err, invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case loan.IsConstraintViolation(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func badRequest(c *gin.Context, err error, message string) {
	c.Error(err)
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
