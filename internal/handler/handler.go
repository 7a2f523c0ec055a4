package handler

import (
	"log/slog"
	"time"

	"github.com/bagdasarian/team-tasks/internal/auth"
	"github.com/bagdasarian/team-tasks/internal/service"
)

// TokenVerifier проверяет access-токен
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type Services struct {
	Auth        service.AuthService
	Tasks       service.TaskService
	Teams       service.TeamService
	Invitations service.InvitationService
	Stats       service.StatsService
}

// CookieSettings - параметры cookie с токеном и активной компанией
type CookieSettings struct {
	Secure   bool
	TokenTTL time.Duration
}

type Handler struct {
	authService       service.AuthService
	taskService       service.TaskService
	teamService       service.TeamService
	invitationService service.InvitationService
	statsService      service.StatsService
	tokens            TokenVerifier
	cookies           CookieSettings
	logger            *slog.Logger
}

func NewHandler(services Services, tokens TokenVerifier, cookies CookieSettings, logger *slog.Logger) *Handler {
	return &Handler{
		authService:       services.Auth,
		taskService:       services.Tasks,
		teamService:       services.Teams,
		invitationService: services.Invitations,
		statsService:      services.Stats,
		tokens:            tokens,
		cookies:           cookies,
		logger:            logger,
	}
}
