//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bagdasarian/team-tasks/internal/auth"
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository/postgres"
	"github.com/bagdasarian/team-tasks/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Контейнер Postgres через testcontainers
	container, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	applyMigrations(t, db)

	t.Cleanup(func() {
		db.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return db
}

func applyMigrations(t *testing.T, db *sql.DB) {
	var migrationSQL []byte
	var err error

	paths := []string{
		filepath.Join("..", "..", "migrations", "000001_init.up.sql"),
		filepath.Join("migrations", "000001_init.up.sql"),
		filepath.Join("..", "migrations", "000001_init.up.sql"),
	}

	for _, path := range paths {
		migrationSQL, err = os.ReadFile(path)
		if err == nil {
			break
		}
	}
	require.NoError(t, err, "не удалось прочитать файл миграции migrations/000001_init.up.sql")

	_, err = db.Exec(string(migrationSQL))
	require.NoError(t, err, "не удалось применить миграцию")
}

// app - сервисы поверх настоящей базы
type app struct {
	db          *sql.DB
	auth        service.AuthService
	tasks       service.TaskService
	teams       service.TeamService
	invitations service.InvitationService
	stats       service.StatsService
	directory   service.MembershipDirectory
}

func newApp(t *testing.T) *app {
	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	transactor := postgres.NewTransactor(db)
	userRepo := postgres.NewUserRepository(db)
	directory := service.NewMembershipDirectory(postgres.NewMembershipRepository(db))

	return &app{
		db:          db,
		auth:        service.NewAuthService(transactor, userRepo, auth.NewTokenManager("secret", time.Hour)),
		tasks:       service.NewTaskService(transactor, postgres.NewTaskRepository(db), directory),
		teams:       service.NewTeamService(transactor, postgres.NewCompanyRepository(db), directory, logger),
		invitations: service.NewInvitationService(transactor, postgres.NewInvitationRepository(db), userRepo, directory, logger),
		stats:       service.NewStatsService(postgres.NewStatsRepository(db), directory),
		directory:   directory,
	}
}

// register создает пользователя и возвращает его Principal без активной компании
func (a *app) register(t *testing.T, name string) domain.Principal {
	t.Helper()
	res, err := a.auth.Register(context.Background(), service.RegisterInput{
		Name:     name,
		Email:    name + "@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return domain.Principal{UserID: res.User.ID, Email: res.User.Email}
}

func inCompany(p domain.Principal, companyID string) domain.Principal {
	p.ActiveCompanyID = &companyID
	return p
}

// join добавляет пользователя в компанию через приглашение и при необходимости меняет роль
func (a *app) join(t *testing.T, admin, user domain.Principal, companyID string, role domain.Role) {
	t.Helper()
	ctx := context.Background()

	inv, err := a.invitations.InviteMember(ctx, inCompany(admin, companyID), user.Email)
	require.NoError(t, err)
	_, err = a.invitations.AcceptInvitation(ctx, user, inv.ID)
	require.NoError(t, err)

	if role != domain.RoleUser {
		require.NoError(t, a.teams.UpdateMemberRole(ctx, inCompany(admin, companyID), user.UserID, role))
	}
}

// backdateMembership сдвигает дату вступления в прошлое
func (a *app) backdateMembership(t *testing.T, userID, companyID string, age time.Duration) {
	t.Helper()
	_, err := a.db.Exec(
		`UPDATE team_memberships SET joined_at = $1 WHERE user_id = $2 AND company_id = $3`,
		time.Now().Add(-age), userID, companyID,
	)
	require.NoError(t, err)
}
