package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/boardgame-club-backend/api"
	mock_api "github.com/hanksha/boardgame-club-backend/api/mocks"
	"github.com/hanksha/boardgame-club-backend/users"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	admin    = users.User{ID: "u0", Username: "root", FirstName: "Club", LastName: "Admin", Role: users.RoleAdmin}
	extended = users.User{ID: "u1", Username: "carol", Role: users.RoleExtendedUser}
	member   = users.User{ID: "u2", Username: "alice", FirstName: "Alice", Role: users.RoleBasicUser}
)

func setUserInContext(user users.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockUserDirectory) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	directory := mock_api.NewMockUserDirectory(ctrl)

	rg := router.Group("/api/v1")
	rg.Use(api.HeaderAuth(directory, "X-Auth-User"))
	api.NewUserHandler().Register(rg.Group("/users"))
	rg.GET("/admin", api.AdminOnly(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	return router, ctrl, directory
}

func TestHeaderAuth(t *testing.T) {
	t.Run("resolves the user", func(t *testing.T) {
		router, ctrl, directory := setupAuthRouter(t)
		defer ctrl.Finish()

		directory.EXPECT().FindByUsername(gomock.Any(), "alice").Return(member, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/me", nil)
		req.Header.Set("X-Auth-User", "alice")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{
			"user": {"id":"u2","username":"alice","email":"","firstName":"Alice","lastName":"","role":"BASIC_USER"},
			"displayName": "Alice",
			"canManageLoans": false
		}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router, ctrl, _ := setupAuthRouter(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/me", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"missing authentication"}`, w.Body.String())
	})

	t.Run("unknown user", func(t *testing.T) {
		router, ctrl, directory := setupAuthRouter(t)
		defer ctrl.Finish()

		directory.EXPECT().FindByUsername(gomock.Any(), "mallory").Return(users.User{}, users.ErrUserNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/me", nil)
		req.Header.Set("X-Auth-User", "mallory")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.JSONEq(t, `{"error":"invalid authentication"}`, w.Body.String())
	})

	t.Run("directory error", func(t *testing.T) {
		router, ctrl, directory := setupAuthRouter(t)
		defer ctrl.Finish()

		directory.EXPECT().FindByUsername(gomock.Any(), "alice").Return(users.User{}, assert.AnError).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/users/me", nil)
		req.Header.Set("X-Auth-User", "alice")
		router.ServeHTTP(w, req)

		assert.Equal(t, 500, w.Code)
	})
}

func TestAdminOnly(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		router, ctrl, directory := setupAuthRouter(t)
		defer ctrl.Finish()

		directory.EXPECT().FindByUsername(gomock.Any(), "root").Return(admin, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin", nil)
		req.Header.Set("X-Auth-User", "root")
		router.ServeHTTP(w, req)

		assert.Equal(t, 204, w.Code)
	})

	t.Run("basic user", func(t *testing.T) {
		router, ctrl, directory := setupAuthRouter(t)
		defer ctrl.Finish()

		directory.EXPECT().FindByUsername(gomock.Any(), "alice").Return(member, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin", nil)
		req.Header.Set("X-Auth-User", "alice")
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})
}
