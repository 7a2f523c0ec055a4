package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CompanyView, error)
}
