package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TeamService interface {
	CreateCompany(ctx context.Context, p domain.Principal, name string) (*domain.CompanyView, error)
	ListMyCompanies(ctx context.Context, p domain.Principal) ([]*domain.CompanyView, error)
	SwitchCompany(ctx context.Context, p domain.Principal, companyID string) (*domain.CompanyView, error)
	ListMembers(ctx context.Context, p domain.Principal) ([]*domain.MemberView, error)
	UpdateMemberRole(ctx context.Context, p domain.Principal, userID string, role domain.Role) error
	RemoveMember(ctx context.Context, p domain.Principal, userID string) error
	TransferOwnership(ctx context.Context, p domain.Principal, newOwnerID string) error
}
