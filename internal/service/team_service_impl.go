package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

// роли проверяются до транзакции, а запись идет с условием на прежнюю роль;
// если условие не совпало, значит состав команды изменился параллельно
var errMembershipChanged = domain.NewConflictError("team membership changed concurrently, please retry")

type teamService struct {
	transactor  repository.Transactor
	companyRepo repository.CompanyRepository
	directory   MembershipDirectory
	logger      *slog.Logger
	now         func() time.Time
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	transactor repository.Transactor,
	companyRepo repository.CompanyRepository,
	directory MembershipDirectory,
	logger *slog.Logger,
) TeamService {
	return &teamService{
		transactor:  transactor,
		companyRepo: companyRepo,
		directory:   directory,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateCompany создает компанию; создатель становится ее ADMIN в той же транзакции
func (s *teamService) CreateCompany(ctx context.Context, p domain.Principal, name string) (*domain.CompanyView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("company name is required")
	}

	company := &domain.Company{Name: name}
	err := s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		return createCompanyWithAdmin(ctx, repos, company, p.UserID)
	})
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	s.logger.Info("company created", "company_id", company.ID, "admin_id", p.UserID)
	return &domain.CompanyView{Company: *company, Role: domain.RoleAdmin}, nil
}

func createCompanyWithAdmin(ctx context.Context, repos repository.Repositories, company *domain.Company, userID string) error {
	if err := repos.Companies.Create(ctx, company); err != nil {
		return err
	}
	return repos.Memberships.Create(ctx, &domain.Membership{
		UserID:    userID,
		CompanyID: company.ID,
		Role:      domain.RoleAdmin,
	})
}

func (s *teamService) ListMyCompanies(ctx context.Context, p domain.Principal) ([]*domain.CompanyView, error) {
	companies, err := s.companyRepo.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return companies, nil
}

// SwitchCompany проверяет членство; сам контекст сохраняет вызывающий слой
func (s *teamService) SwitchCompany(ctx context.Context, p domain.Principal, companyID string) (*domain.CompanyView, error) {
	role, err := requireRole(ctx, s.directory, p.UserID, companyID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("company")
		}
		return nil, fmt.Errorf("get company: %w", err)
	}

	return &domain.CompanyView{Company: *company, Role: role}, nil
}

// ListMembers возвращает участников активной компании
func (s *teamService) ListMembers(ctx context.Context, p domain.Principal) ([]*domain.MemberView, error) {
	companyID, err := p.CompanyID()
	if err != nil {
		return nil, err
	}
	if _, err := requireRole(ctx, s.directory, p.UserID, companyID); err != nil {
		return nil, err
	}
	return s.directory.ListMembers(ctx, companyID)
}

// requireAdmin возвращает активную компанию, если пользователь в ней ADMIN
func (s *teamService) requireAdmin(ctx context.Context, p domain.Principal, action string) (string, error) {
	companyID, err := p.CompanyID()
	if err != nil {
		return "", err
	}

	role, err := requireRole(ctx, s.directory, p.UserID, companyID)
	if err != nil {
		return "", err
	}
	if role != domain.RoleAdmin {
		return "", domain.NewForbiddenError("only the team owner can " + action)
	}
	return companyID, nil
}

// UpdateMemberRole меняет роль участника. Роль ADMIN назначается только передачей владения.
func (s *teamService) UpdateMemberRole(ctx context.Context, p domain.Principal, userID string, role domain.Role) error {
	if _, err := p.CompanyID(); err != nil {
		return err
	}
	if role == domain.RoleAdmin {
		return domain.NewConflictError("the ADMIN role can only be assigned by transferring ownership")
	}
	if !role.IsValid() {
		return domain.NewValidationError("invalid role %q", role)
	}

	companyID, err := s.requireAdmin(ctx, p, "manage roles")
	if err != nil {
		return err
	}
	if userID == p.UserID {
		return domain.NewConflictError("you cannot change your own role")
	}

	target, err := s.directory.GetMembership(ctx, userID, companyID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.NewConflictError("the team owner's role can only change through ownership transfer")
	}
	if target.Role == role {
		return nil
	}

	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		return repos.Memberships.UpdateRole(ctx, userID, companyID, target.Role, role)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errMembershipChanged
		}
		return fmt.Errorf("update role: %w", err)
	}

	s.logger.Info("member role updated", "company_id", companyID, "user_id", userID, "role", role)
	return nil
}

// RemoveMember исключает участника и снимает его со всех задач компании
func (s *teamService) RemoveMember(ctx context.Context, p domain.Principal, userID string) error {
	companyID, err := s.requireAdmin(ctx, p, "remove members")
	if err != nil {
		return err
	}
	if userID == p.UserID {
		return domain.NewConflictError("you cannot remove yourself from the team")
	}

	target, err := s.directory.GetMembership(ctx, userID, companyID)
	if err != nil {
		return err
	}
	if target.Role == domain.RoleAdmin {
		return domain.NewConflictError("the team owner cannot be removed")
	}

	var cleared int
	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		n, err := repos.Tasks.ClearCompanyAssignments(ctx, companyID, userID)
		if err != nil {
			return err
		}
		cleared = n
		return repos.Memberships.Delete(ctx, userID, companyID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errMembershipChanged
		}
		return fmt.Errorf("remove member: %w", err)
	}

	s.logger.Info("member removed",
		"company_id", companyID,
		"user_id", userID,
		"cleared_assignments", cleared,
	)
	return nil
}

// TransferOwnership передает роль ADMIN участнику с ролью OFFICER.
// Текущий владелец становится OFFICER; обе смены ролей в одной транзакции.
func (s *teamService) TransferOwnership(ctx context.Context, p domain.Principal, newOwnerID string) error {
	companyID, err := s.requireAdmin(ctx, p, "transfer ownership")
	if err != nil {
		return err
	}
	if newOwnerID == p.UserID {
		return domain.NewConflictError("you already own this team")
	}

	target, err := s.directory.GetMembership(ctx, newOwnerID, companyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("user is not a member of this team")
		}
		return err
	}
	if target.Role != domain.RoleOfficer {
		return domain.NewConflictError("ownership can only be transferred to an Officer")
	}
	if err := checkTransferTenure(target.JoinedAt, s.now()); err != nil {
		return err
	}

	// сначала понижаем владельца: индекс допускает только одного ADMIN
	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		if err := repos.Memberships.UpdateRole(ctx, p.UserID, companyID, domain.RoleAdmin, domain.RoleOfficer); err != nil {
			return err
		}
		return repos.Memberships.UpdateRole(ctx, newOwnerID, companyID, domain.RoleOfficer, domain.RoleAdmin)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errMembershipChanged
		}
		return fmt.Errorf("transfer ownership: %w", err)
	}

	s.logger.Info("ownership transferred",
		"company_id", companyID,
		"from_user_id", p.UserID,
		"to_user_id", newOwnerID,
	)
	return nil
}
