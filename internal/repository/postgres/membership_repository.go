package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

func NewMembershipRepositoryWithTx(tx *sql.Tx) *membershipRepository {
	return &membershipRepository{executor: tx}
}

func (r *membershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	query := `
		INSERT INTO team_memberships (id, user_id, company_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING joined_at
	`

	membership.ID = newID()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		membership.ID,
		membership.UserID,
		membership.CompanyID,
		string(membership.Role),
		time.Now(),
	).Scan(&membership.JoinedAt)
	if err != nil {
		membership.ID = ""
		return mapError(err)
	}
	return nil
}

// Get возвращает членство пользователя в компании или repository.ErrNotFound
func (r *membershipRepository) Get(ctx context.Context, userID, companyID string) (*domain.Membership, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(companyID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, company_id, role, joined_at
		FROM team_memberships
		WHERE user_id = $1 AND company_id = $2
	`

	m := &domain.Membership{}
	var role string
	err = r.executor.QueryRowContext(ctx, query, uid, cid).Scan(
		&m.ID,
		&m.UserID,
		&m.CompanyID,
		&role,
		&m.JoinedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	m.Role = domain.Role(role)
	return m, nil
}

func (r *membershipRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.MemberView, error) {
	cid, err := parseID(companyID)
	if err != nil {
		return []*domain.MemberView{}, nil
	}

	query := `
		SELECT u.id, u.email, u.name, m.role, m.joined_at
		FROM team_memberships m
		INNER JOIN users u ON u.id = m.user_id
		WHERE m.company_id = $1
		ORDER BY m.joined_at DESC, u.name
	`

	rows, err := r.executor.QueryContext(ctx, query, cid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*domain.MemberView{}
	for rows.Next() {
		member := &domain.MemberView{}
		var role string
		if err := rows.Scan(&member.UserID, &member.Email, &member.Name, &role, &member.JoinedAt); err != nil {
			return nil, err
		}
		member.Role = domain.Role(role)
		members = append(members, member)
	}

	return members, rows.Err()
}

// UpdateRole меняет роль только если текущая роль равна from.
// Ноль затронутых строк означает, что членство исчезло или роль уже сменилась.
func (r *membershipRepository) UpdateRole(ctx context.Context, userID, companyID string, from, to domain.Role) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	cid, err := parseID(companyID)
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `
		UPDATE team_memberships
		SET role = $3
		WHERE user_id = $1 AND company_id = $2 AND role = $4
	`, uid, cid, string(to), string(from))
	if err != nil {
		return mapError(err)
	}
	return checkAffected(result)
}

// Delete не трогает членство ADMIN: у компании всегда остается владелец
func (r *membershipRepository) Delete(ctx context.Context, userID, companyID string) error {
	uid, err := parseID(userID)
	if err != nil {
		return err
	}
	cid, err := parseID(companyID)
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `
		DELETE FROM team_memberships
		WHERE user_id = $1 AND company_id = $2 AND role <> 'ADMIN'
	`, uid, cid)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
