package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactor_WithinTx(t *testing.T) {
	t.Run("коммит при успехе", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE team_memberships").
			WithArgs(userID1, companyID1, "OFFICER", "ADMIN").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE team_memberships").
			WithArgs(userID2, companyID1, "ADMIN", "OFFICER").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tr.WithinTx(context.Background(), func(repos repository.Repositories) error {
			if err := repos.Memberships.UpdateRole(context.Background(), userID1, companyID1, domain.RoleAdmin, domain.RoleOfficer); err != nil {
				return err
			}
			return repos.Memberships.UpdateRole(context.Background(), userID2, companyID1, domain.RoleOfficer, domain.RoleAdmin)
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("откат при ошибке", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE team_memberships").
			WithArgs(userID1, companyID1, "OFFICER", "ADMIN").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE team_memberships").
			WithArgs(userID2, companyID1, "ADMIN", "OFFICER").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := tr.WithinTx(context.Background(), func(repos repository.Repositories) error {
			if err := repos.Memberships.UpdateRole(context.Background(), userID1, companyID1, domain.RoleAdmin, domain.RoleOfficer); err != nil {
				return err
			}
			return repos.Memberships.UpdateRole(context.Background(), userID2, companyID1, domain.RoleOfficer, domain.RoleAdmin)
		})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка начала транзакции", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		called := false
		err := tr.WithinTx(context.Background(), func(repository.Repositories) error {
			called = true
			return nil
		})

		assert.Error(t, err)
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ошибка коммита", func(t *testing.T) {
		db, mock := setupMockDB(t)
		tr := NewTransactor(db)

		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

		err := tr.WithinTx(context.Background(), func(repository.Repositories) error {
			return nil
		})

		assert.ErrorContains(t, err, "commit transaction")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
