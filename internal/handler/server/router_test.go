package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bagdasarian/team-tasks/internal/auth"
	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/stretchr/testify/assert"
)

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHandler(handler.Services{}, auth.NewTokenManager("secret", time.Hour), handler.CookieSettings{}, logger)
	return NewRouter(h, []string{"http://localhost:3000"}, logger)
}

func TestRouter(t *testing.T) {
	router := newTestRouter()

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get("Content-Type"))
	})

	t.Run("защищенные маршруты требуют токен", func(t *testing.T) {
		for _, path := range []string{"/api/tasks", "/api/teams/members", "/api/companies", "/api/auth/me", "/api/users"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("неизвестный маршрут", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
