package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, name, password_hash, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	user.ID = newID()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Avatar,
		time.Now(),
	).Scan(&user.CreatedAt)
	if err != nil {
		user.ID = ""
		return mapError(err)
	}
	user.UpdatedAt = nil
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.getOne(ctx, "id = $1", userID)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "email = $1", strings.ToLower(strings.TrimSpace(email)))
}

// Update сохраняет имя и аватар; email и пароль здесь не меняются
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	userID, err := parseID(user.ID)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $2, avatar = $3, updated_at = $4
		WHERE id = $1
		RETURNING updated_at
	`

	var updatedAt time.Time
	err = r.executor.QueryRowContext(ctx, query, userID, user.Name, user.Avatar, time.Now()).Scan(&updatedAt)
	if err != nil {
		return mapError(err)
	}
	user.UpdatedAt = &updatedAt
	return nil
}

func (r *userRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `
		SELECT id, email, name, password_hash, avatar, created_at, updated_at
		FROM users
		WHERE ` + where

	user := &domain.User{}
	var avatar sql.NullString
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&avatar,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	user.Avatar = stringPtr(avatar)
	user.UpdatedAt = timePtr(updatedAt)
	return user, nil
}
