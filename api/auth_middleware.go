package api

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/users"
)

type UserDirectory interface {
	FindByID(ctx context.Context, id string) (users.User, error)
	FindByUsername(ctx context.Context, username string) (users.User, error)
}

// HeaderAuth resolves the username set by the upstream proxy in header and stores the
// matching user in the context.
func HeaderAuth(directory UserDirectory, header string) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetHeader(header)

		if len(username) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		user, err := directory.FindByUsername(c.Request.Context(), username)

		if errors.Is(err, users.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			c.Abort()
			return
		}

		c.Set("user", user)
	}
}

func RequireRole(roles ...users.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		if !slices.Contains(roles, user.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
			c.Abort()
			return
		}
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(users.RoleAdmin)
}

func currentUser(c *gin.Context) users.User {
	return c.MustGet("user").(users.User)
}
