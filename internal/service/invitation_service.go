package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type InvitationService interface {
	InviteMember(ctx context.Context, p domain.Principal, email string) (*domain.Invitation, error)
	ListMyInvitations(ctx context.Context, p domain.Principal) ([]*domain.Invitation, error)
	AcceptInvitation(ctx context.Context, p domain.Principal, invitationID string) (*domain.Membership, error)
	RejectInvitation(ctx context.Context, p domain.Principal, invitationID string) error
}
