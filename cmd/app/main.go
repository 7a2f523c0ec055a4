package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/team-tasks/internal/auth"
	"github.com/bagdasarian/team-tasks/internal/config"
	"github.com/bagdasarian/team-tasks/internal/db"
	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/bagdasarian/team-tasks/internal/handler/server"
	"github.com/bagdasarian/team-tasks/internal/logger"
	"github.com/bagdasarian/team-tasks/internal/repository/postgres"
	"github.com/bagdasarian/team-tasks/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Log, os.Stdout)
	if err := cfg.Auth.Validate(); err != nil {
		log.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	database := db.MustLoad(ctx, cfg.Database)
	log.Info("connected to database", "host", cfg.Database.Host, "db", cfg.Database.DBName)
	defer database.Close()

	transactor := postgres.NewTransactor(database)
	userRepo := postgres.NewUserRepository(database)
	companyRepo := postgres.NewCompanyRepository(database)
	membershipRepo := postgres.NewMembershipRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	invitationRepo := postgres.NewInvitationRepository(database)
	statsRepo := postgres.NewStatsRepository(database)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	directory := service.NewMembershipDirectory(membershipRepo)

	services := handler.Services{
		Auth:        service.NewAuthService(transactor, userRepo, tokens),
		Tasks:       service.NewTaskService(transactor, taskRepo, directory),
		Teams:       service.NewTeamService(transactor, companyRepo, directory, log),
		Invitations: service.NewInvitationService(transactor, invitationRepo, userRepo, directory, log),
		Stats:       service.NewStatsService(statsRepo, directory),
	}

	h := handler.NewHandler(services, tokens, handler.CookieSettings{
		Secure:   cfg.HTTP.SecureCookies,
		TokenTTL: cfg.Auth.TokenTTL,
	}, log)
	srv := server.NewServer(server.NewRouter(h, cfg.HTTP.AllowedOrigins, log), cfg.HTTP.Addr, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
	}
}
