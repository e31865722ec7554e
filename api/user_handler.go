package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/me", h.GetCurrentUser)
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user := currentUser(c)

	c.IndentedJSON(http.StatusOK, gin.H{
		"user":           user,
		"displayName":    user.DisplayName(),
		"canManageLoans": user.CanManageLoans(),
	})
}
