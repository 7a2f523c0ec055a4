package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	tokenCookie   = "auth-token"
	companyCookie = "current-company-id"
	companyHeader = "X-Company-ID"
)

type contextKey string

const principalKey contextKey = "principal"

// Authenticate строит Principal из Bearer-токена или cookie auth-token.
// Активная компания берется из заголовка X-Company-ID, иначе из cookie current-company-id.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			h.handleError(w, r, domain.ErrUnauthenticated)
			return
		}

		claims, err := h.tokens.Verify(token)
		if err != nil {
			h.handleError(w, r, domain.ErrUnauthenticated)
			return
		}

		p := domain.Principal{UserID: claims.UserID, Email: claims.Email}
		if companyID := activeCompany(r); companyID != "" {
			p.ActiveCompanyID = &companyID
		}

		ctx := context.WithValue(r.Context(), principalKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	if cookie, err := r.Cookie(tokenCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func activeCompany(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(companyHeader)); id != "" {
		return id
	}
	if cookie, err := r.Cookie(companyCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func principalFrom(ctx context.Context) (domain.Principal, error) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok || p.UserID == "" {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

func (h *Handler) setCookie(w http.ResponseWriter, name, value string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
