package server

import (
	"log/slog"
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(h *handler.Handler, allowedOrigins []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(handler.AccessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Company-ID"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r chi.Router, h *handler.Handler) {
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
		r.Post("/auth/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)

			r.Get("/auth/me", h.Me)
			r.Patch("/auth/me", h.UpdateMe)
			r.Get("/users", h.ListUsers)

			r.Route("/companies", func(r chi.Router) {
				r.Get("/", h.ListCompanies)
				r.Post("/", h.CreateCompany)
				r.Post("/switch", h.SwitchCompany)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.ListTasks)
				r.Post("/", h.CreateTask)
				r.Get("/stats", h.GetTaskStats)
				r.Get("/{id}", h.GetTask)
				r.Patch("/{id}", h.UpdateTask)
				r.Delete("/{id}", h.DeleteTask)
				r.Post("/{id}/assign", h.AssignUsers)
				r.Delete("/{id}/assign", h.UnassignUser)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/members", h.ListMembers)
				r.Patch("/members", h.UpdateMemberRole)
				r.Delete("/members", h.RemoveMember)
				r.Post("/invite", h.InviteMember)
				r.Get("/invites", h.ListInvitations)
				r.Post("/accept", h.AcceptInvitation)
				r.Post("/reject", h.RejectInvitation)
				r.Post("/transfer-ownership", h.TransferOwnership)
			})
		})
	})
}
