package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query domain.TaskQuery) ([]*domain.Task, int, error)
	ReplaceAssignees(ctx context.Context, taskID string, userIDs []string) error
	AddAssignee(ctx context.Context, taskID, userID string) error
	RemoveAssignee(ctx context.Context, taskID, userID string) error
	ClearCompanyAssignments(ctx context.Context, companyID, userID string) (int, error)
}
