package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lshigami/Quokka/config"
	"github.com/lshigami/Quokka/internal/auth"
	"github.com/lshigami/Quokka/internal/model"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenExpireHours = 1
	tm := auth.NewTokenManager(cfg)

	r := gin.New()
	r.GET("/protected", Auth(tm), func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": id})
	})
	return r, tm
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token yields uniform 401", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("garbage token yields the same 401", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	})

	t.Run("valid bearer token passes and exposes the user id", func(t *testing.T) {
		r, tm := newAuthRouter(t)
		token, err := tm.Generate(&model.User{ID: 7, Name: "alice", Email: "alice@corp.example.com"})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userID":7}`, w.Body.String())
	})
}
