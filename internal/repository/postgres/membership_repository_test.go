package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMembershipRepo(t *testing.T) (*membershipRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewMembershipRepository(db), mock
}

func TestMembershipRepository_Create(t *testing.T) {
	t.Run("успешное создание", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		joined := time.Now()
		mock.ExpectQuery("INSERT INTO team_memberships").
			WithArgs(sqlmock.AnyArg(), userID1, companyID1, "ADMIN", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"joined_at"}).AddRow(joined))

		m := &domain.Membership{UserID: userID1, CompanyID: companyID1, Role: domain.RoleAdmin}
		err := repo.Create(context.Background(), m)

		require.NoError(t, err)
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, joined, m.JoinedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("второй ADMIN отклоняется индексом", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectQuery("INSERT INTO team_memberships").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "team_memberships_one_admin"})

		m := &domain.Membership{UserID: userID2, CompanyID: companyID1, Role: domain.RoleAdmin}
		err := repo.Create(context.Background(), m)

		assert.ErrorIs(t, err, repository.ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_Get(t *testing.T) {
	t.Run("членство найдено", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		joined := time.Now().Add(-240 * time.Hour)
		rows := sqlmock.NewRows([]string{"id", "user_id", "company_id", "role", "joined_at"}).
			AddRow("m1", userID1, companyID1, "OFFICER", joined)
		mock.ExpectQuery("FROM team_memberships").
			WithArgs(userID1, companyID1).
			WillReturnRows(rows)

		m, err := repo.Get(context.Background(), userID1, companyID1)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleOfficer, m.Role)
		assert.Equal(t, joined, m.JoinedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("не участник", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectQuery("FROM team_memberships").
			WithArgs(userID1, companyID1).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), userID1, companyID1)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_ListByCompany(t *testing.T) {
	repo, mock := setupMembershipRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "joined_at"}).
		AddRow(userID2, "bob@x.com", "Bob", "USER", now).
		AddRow(userID1, "alice@x.com", "Alice", "ADMIN", now.Add(-time.Hour))
	mock.ExpectQuery("FROM team_memberships m").
		WithArgs(companyID1).
		WillReturnRows(rows)

	members, err := repo.ListByCompany(context.Background(), companyID1)

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, userID2, members[0].UserID)
	assert.Equal(t, domain.RoleAdmin, members[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMembershipRepository_UpdateRole(t *testing.T) {
	t.Run("роль обновлена", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectExec(`UPDATE team_memberships\s+SET role = \$3\s+WHERE user_id = \$1 AND company_id = \$2 AND role = \$4`).
			WithArgs(userID2, companyID1, "OFFICER", "USER").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateRole(context.Background(), userID2, companyID1, domain.RoleUser, domain.RoleOfficer)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("роль уже сменилась в другой транзакции", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		// цель успела стать ADMIN, условие role = USER не совпало
		mock.ExpectExec("UPDATE team_memberships").
			WithArgs(userID2, companyID1, "OFFICER", "USER").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRole(context.Background(), userID2, companyID1, domain.RoleUser, domain.RoleOfficer)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMembershipRepository_Delete(t *testing.T) {
	t.Run("участник удален", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectExec(`DELETE FROM team_memberships\s+WHERE user_id = \$1 AND company_id = \$2 AND role <> 'ADMIN'`).
			WithArgs(userID2, companyID1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), userID2, companyID1)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ADMIN не удаляется", func(t *testing.T) {
		repo, mock := setupMembershipRepo(t)

		mock.ExpectExec("DELETE FROM team_memberships").
			WithArgs(userID2, companyID1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), userID2, companyID1)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
