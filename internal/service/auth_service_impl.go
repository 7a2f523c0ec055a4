package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

var errInvalidCredentials = &domain.DomainError{
	Code:    domain.CodeUnauthenticated,
	Message: "invalid email or password",
}

type authService struct {
	transactor repository.Transactor
	userRepo   repository.UserRepository
	tokens     TokenIssuer
	hashCost   int
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(transactor repository.Transactor, userRepo repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{
		transactor: transactor,
		userRepo:   userRepo,
		tokens:     tokens,
		hashCost:   bcrypt.DefaultCost,
	}
}

// Register создает пользователя и, если указано имя, компанию с ним в роли ADMIN
func (s *authService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	var company *domain.Company
	if input.CompanyName != nil {
		if companyName := strings.TrimSpace(*input.CompanyName); companyName != "" {
			company = &domain.Company{Name: companyName}
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}

	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		if company == nil {
			return nil
		}
		return createCompanyWithAdmin(ctx, repos, company, user.ID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.NewConflictError("user already exists")
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	if company != nil {
		result.Company = &domain.CompanyView{Company: *company, Role: domain.RoleAdmin}
	}
	return result, nil
}

// Login проверяет пароль и выдает токен
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateProfile меняет имя и аватар текущего пользователя.
// Пустой аватар равносилен его удалению.
func (s *authService) UpdateProfile(ctx context.Context, p domain.Principal, update ProfileUpdate) (*domain.User, error) {
	user, err := s.Me(ctx, p)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, domain.NewValidationError("name must not be empty")
		}
		user.Name = name
	}
	switch {
	case update.ClearAvatar:
		user.Avatar = nil
	case update.Avatar != nil:
		if avatar := strings.TrimSpace(*update.Avatar); avatar != "" {
			user.Avatar = &avatar
		} else {
			user.Avatar = nil
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (s *authService) issue(user *domain.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
