package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type companyRepository struct {
	executor DBExecutor
}

func NewCompanyRepository(db *sql.DB) *companyRepository {
	return &companyRepository{executor: db}
}

func NewCompanyRepositoryWithTx(tx *sql.Tx) *companyRepository {
	return &companyRepository{executor: tx}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	company.ID = newID()
	err := r.executor.QueryRowContext(ctx, query, company.ID, company.Name, time.Now()).Scan(&company.CreatedAt)
	if err != nil {
		company.ID = ""
		return mapError(err)
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	companyID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, created_at, updated_at
		FROM companies
		WHERE id = $1
	`

	company := &domain.Company{}
	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(ctx, query, companyID).Scan(
		&company.ID,
		&company.Name,
		&company.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	company.UpdatedAt = timePtr(updatedAt)
	return company, nil
}

// ListByUser возвращает компании пользователя вместе с его ролью в каждой
func (r *companyRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CompanyView, error) {
	id, err := parseID(userID)
	if err != nil {
		return []*domain.CompanyView{}, nil
	}

	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at, m.role
		FROM companies c
		INNER JOIN team_memberships m ON m.company_id = c.id
		WHERE m.user_id = $1
		ORDER BY c.name
	`

	rows, err := r.executor.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := []*domain.CompanyView{}
	for rows.Next() {
		view := &domain.CompanyView{}
		var updatedAt sql.NullTime
		var role string
		if err := rows.Scan(&view.Company.ID, &view.Company.Name, &view.Company.CreatedAt, &updatedAt, &role); err != nil {
			return nil, err
		}
		view.Company.UpdatedAt = timePtr(updatedAt)
		view.Role = domain.Role(role)
		views = append(views, view)
	}

	return views, rows.Err()
}
