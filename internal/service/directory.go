package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

// MembershipDirectory - единственный источник ролей пользователей в компаниях
type MembershipDirectory interface {
	// GetRole возвращает роль или domain.RoleNone, если пользователь не участник
	GetRole(ctx context.Context, userID, companyID string) (domain.Role, error)
	GetMembership(ctx context.Context, userID, companyID string) (*domain.Membership, error)
	ListMembers(ctx context.Context, companyID string) ([]*domain.MemberView, error)
}

type membershipDirectory struct {
	membershipRepo repository.MembershipRepository
}

func NewMembershipDirectory(membershipRepo repository.MembershipRepository) MembershipDirectory {
	return &membershipDirectory{membershipRepo: membershipRepo}
}

func (d *membershipDirectory) GetRole(ctx context.Context, userID, companyID string) (domain.Role, error) {
	m, err := d.membershipRepo.Get(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.RoleNone, nil
		}
		return domain.RoleNone, fmt.Errorf("get membership: %w", err)
	}
	return m.Role, nil
}

func (d *membershipDirectory) GetMembership(ctx context.Context, userID, companyID string) (*domain.Membership, error) {
	m, err := d.membershipRepo.Get(ctx, userID, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("membership")
		}
		return nil, fmt.Errorf("get membership: %w", err)
	}
	return m, nil
}

func (d *membershipDirectory) ListMembers(ctx context.Context, companyID string) ([]*domain.MemberView, error) {
	members, err := d.membershipRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

// requireRole возвращает роль участника или ErrNotCompanyMember
func requireRole(ctx context.Context, dir MembershipDirectory, userID, companyID string) (domain.Role, error) {
	role, err := dir.GetRole(ctx, userID, companyID)
	if err != nil {
		return domain.RoleNone, err
	}
	if role == domain.RoleNone {
		return domain.RoleNone, domain.ErrNotCompanyMember
	}
	return role, nil
}

// roleInTaskCompany - роль пользователя в компании задачи; для личных задач RoleNone
func roleInTaskCompany(ctx context.Context, dir MembershipDirectory, userID string, task *domain.Task) (domain.Role, error) {
	if task.IsPersonal() {
		return domain.RoleNone, nil
	}
	return dir.GetRole(ctx, userID, *task.CompanyID)
}
