package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type invitationRepository struct {
	executor DBExecutor
}

func NewInvitationRepository(db *sql.DB) *invitationRepository {
	return &invitationRepository{executor: db}
}

func NewInvitationRepositoryWithTx(tx *sql.Tx) *invitationRepository {
	return &invitationRepository{executor: tx}
}

const invitationColumns = `
	i.id, i.email, i.company_id, c.name, i.inviter_id, i.user_id, i.status, i.created_at, i.updated_at
`

func scanInvitation(row rowScanner) (*domain.Invitation, error) {
	inv := &domain.Invitation{}
	var userID sql.NullString
	var updatedAt sql.NullTime
	var status string

	err := row.Scan(
		&inv.ID,
		&inv.Email,
		&inv.CompanyID,
		&inv.CompanyName,
		&inv.InviterID,
		&userID,
		&status,
		&inv.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	inv.UserID = stringPtr(userID)
	inv.UpdatedAt = timePtr(updatedAt)
	inv.Status = domain.InvitationStatus(status)
	return inv, nil
}

// Upsert создает приглашение; для существующей пары (email, company) сбрасывает его в PENDING
func (r *invitationRepository) Upsert(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (id, email, company_id, inviter_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email, company_id) DO UPDATE
		SET status = EXCLUDED.status,
			inviter_id = EXCLUDED.inviter_id,
			user_id = EXCLUDED.user_id,
			updated_at = EXCLUDED.created_at
		RETURNING id, created_at, updated_at
	`

	inv.Email = strings.ToLower(strings.TrimSpace(inv.Email))
	inv.Status = domain.InvitationPending

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		newID(),
		inv.Email,
		inv.CompanyID,
		inv.InviterID,
		inv.UserID,
		string(inv.Status),
		time.Now(),
	).Scan(&inv.ID, &inv.CreatedAt, &updatedAt)
	if err != nil {
		return mapError(err)
	}
	inv.UpdatedAt = timePtr(updatedAt)
	return nil
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	invID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT ` + invitationColumns + `
		FROM invitations i
		INNER JOIN companies c ON c.id = i.company_id
		WHERE i.id = $1
	`

	inv, err := scanInvitation(r.executor.QueryRowContext(ctx, query, invID))
	if err != nil {
		return nil, mapError(err)
	}
	return inv, nil
}

func (r *invitationRepository) ListPendingByEmail(ctx context.Context, email string) ([]*domain.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations i
		INNER JOIN companies c ON c.id = i.company_id
		WHERE i.email = $1 AND i.status = $2
		ORDER BY i.created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, strings.ToLower(strings.TrimSpace(email)), string(domain.InvitationPending))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invitations := []*domain.Invitation{}
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}

	return invitations, rows.Err()
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, id string, status domain.InvitationStatus) error {
	invID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `
		UPDATE invitations
		SET status = $2, updated_at = $3
		WHERE id = $1
	`, invID, string(status), time.Now())
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (r *invitationRepository) Delete(ctx context.Context, id string) error {
	invID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `DELETE FROM invitations WHERE id = $1`, invID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
