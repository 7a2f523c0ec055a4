package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type InvitationRepository interface {
	// Upsert создает приглашение или сбрасывает существующее (email, company) в PENDING
	Upsert(ctx context.Context, invitation *domain.Invitation) error
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	ListPendingByEmail(ctx context.Context, email string) ([]*domain.Invitation, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error
	Delete(ctx context.Context, id string) error
}
