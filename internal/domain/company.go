package domain

import "time"

type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Role - роль пользователя внутри компании
type Role string

const (
	// RoleNone означает отсутствие членства в компании
	RoleNone    Role = ""
	RoleUser    Role = "USER"
	RoleOfficer Role = "OFFICER"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOfficer, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsPrivileged - ADMIN и OFFICER видят и редактируют все задачи компании
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleOfficer
}

type Membership struct {
	ID        string
	UserID    string
	CompanyID string
	Role      Role
	JoinedAt  time.Time
}

// MemberView - участник компании вместе с профилем пользователя
type MemberView struct {
	UserID   string
	Email    string
	Name     string
	Role     Role
	JoinedAt time.Time
}

// CompanyView - компания, в которой состоит пользователь, и его роль в ней
type CompanyView struct {
	Company Company
	Role    Role
}
