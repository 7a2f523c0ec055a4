package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

type invitationService struct {
	transactor     repository.Transactor
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	directory      MembershipDirectory
	logger         *slog.Logger
}

// NewInvitationService создает новый экземпляр InvitationService
func NewInvitationService(
	transactor repository.Transactor,
	invitationRepo repository.InvitationRepository,
	userRepo repository.UserRepository,
	directory MembershipDirectory,
	logger *slog.Logger,
) InvitationService {
	return &invitationService{
		transactor:     transactor,
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		directory:      directory,
		logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return domain.NewValidationError("invalid email %q", email)
	}
	return nil
}

// InviteMember приглашает email в активную компанию; повторное приглашение
// сбрасывает существующую запись в PENDING
func (s *invitationService) InviteMember(ctx context.Context, p domain.Principal, email string) (*domain.Invitation, error) {
	companyID, err := p.CompanyID()
	if err != nil {
		return nil, err
	}

	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	role, err := requireRole(ctx, s.directory, p.UserID, companyID)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin {
		return nil, domain.NewForbiddenError("only admins can invite members")
	}

	inv := &domain.Invitation{
		Email:     email,
		CompanyID: companyID,
		InviterID: p.UserID,
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		memberRole, err := s.directory.GetRole(ctx, user.ID, companyID)
		if err != nil {
			return nil, err
		}
		if memberRole != domain.RoleNone {
			return nil, domain.NewConflictError("user is already a member of this team")
		}
		inv.UserID = &user.ID
	case errors.Is(err, repository.ErrNotFound):
	default:
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.invitationRepo.Upsert(ctx, inv); err != nil {
		return nil, fmt.Errorf("upsert invitation: %w", err)
	}

	s.logger.Info("invitation sent", "company_id", companyID, "invitation_id", inv.ID)
	return inv, nil
}

// ListMyInvitations - ожидающие приглашения на email пользователя
func (s *invitationService) ListMyInvitations(ctx context.Context, p domain.Principal) ([]*domain.Invitation, error) {
	invitations, err := s.invitationRepo.ListPendingByEmail(ctx, p.Email)
	if err != nil {
		return nil, fmt.Errorf("list invitations: %w", err)
	}
	return invitations, nil
}

// loadOwn возвращает приглашение, только если оно адресовано пользователю.
// Чужое приглашение неотличимо от отсутствующего.
func (s *invitationService) loadOwn(ctx context.Context, p domain.Principal, invitationID string) (*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("invitation")
		}
		return nil, fmt.Errorf("get invitation: %w", err)
	}
	if inv.Email != normalizeEmail(p.Email) {
		return nil, domain.NewNotFoundError("invitation")
	}
	return inv, nil
}

// AcceptInvitation создает членство с ролью USER и помечает приглашение ACCEPTED
func (s *invitationService) AcceptInvitation(ctx context.Context, p domain.Principal, invitationID string) (*domain.Membership, error) {
	inv, err := s.loadOwn(ctx, p, invitationID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvitationPending {
		return nil, domain.NewNotFoundError("invitation")
	}

	membership := &domain.Membership{
		UserID:    p.UserID,
		CompanyID: inv.CompanyID,
		Role:      domain.RoleUser,
	}

	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		if err := repos.Memberships.Create(ctx, membership); err != nil {
			return err
		}
		return repos.Invitations.UpdateStatus(ctx, inv.ID, domain.InvitationAccepted)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.NewConflictError("you are already a member of this team")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("invitation")
		}
		return nil, fmt.Errorf("accept invitation: %w", err)
	}

	s.logger.Info("invitation accepted",
		"company_id", inv.CompanyID,
		"invitation_id", inv.ID,
		"user_id", p.UserID,
	)
	return membership, nil
}

// RejectInvitation удаляет приглашение; повторный вызов дает NotFound
func (s *invitationService) RejectInvitation(ctx context.Context, p domain.Principal, invitationID string) error {
	inv, err := s.loadOwn(ctx, p, invitationID)
	if err != nil {
		return err
	}

	if err := s.invitationRepo.Delete(ctx, inv.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("invitation")
		}
		return fmt.Errorf("reject invitation: %w", err)
	}
	return nil
}
