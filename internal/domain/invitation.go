package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
)

type Invitation struct {
	ID          string
	Email       string
	CompanyID   string
	CompanyName string
	InviterID   string
	UserID      *string
	Status      InvitationStatus
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
