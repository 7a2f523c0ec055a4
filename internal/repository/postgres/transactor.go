package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bagdasarian/team-tasks/internal/repository"
)

type transactor struct {
	db *sql.DB
}

func NewTransactor(db *sql.DB) *transactor {
	return &transactor{db: db}
}

// WithinTx открывает транзакцию и передает в fn репозитории, привязанные к ней
func (t *transactor) WithinTx(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	repos := repository.Repositories{
		Users:       NewUserRepositoryWithTx(tx),
		Companies:   NewCompanyRepositoryWithTx(tx),
		Memberships: NewMembershipRepositoryWithTx(tx),
		Tasks:       NewTaskRepositoryWithTx(tx),
		Invitations: NewInvitationRepositoryWithTx(tx),
	}

	if err := fn(repos); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
