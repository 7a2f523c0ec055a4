package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	Get(ctx context.Context, userID, companyID string) (*domain.Membership, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.MemberView, error)
	UpdateRole(ctx context.Context, userID, companyID string, from, to domain.Role) error
	Delete(ctx context.Context, userID, companyID string) error
}
