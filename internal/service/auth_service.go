package service

import (
	"context"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

// TokenIssuer подписывает токен доступа
type TokenIssuer interface {
	Issue(userID, email string) (string, time.Time, error)
}

type RegisterInput struct {
	Name        string
	Email       string
	Password    string
	CompanyName *string
}

// AuthResult - пользователь, выданный ему токен и, при регистрации с компанией, сама компания
type AuthResult struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
	Company   *domain.CompanyView
}

// ProfileUpdate - изменяемые поля профиля; nil означает "не менять"
type ProfileUpdate struct {
	Name        *string
	Avatar      *string
	ClearAvatar bool
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, p domain.Principal) (*domain.User, error)
	UpdateProfile(ctx context.Context, p domain.Principal, update ProfileUpdate) (*domain.User, error)
}
