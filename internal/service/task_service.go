package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TaskService interface {
	ListVisibleTasks(ctx context.Context, p domain.Principal, filter domain.TaskFilter) (*domain.TaskPage, error)
	GetTask(ctx context.Context, p domain.Principal, taskID string) (*domain.Task, error)
	CreateTask(ctx context.Context, p domain.Principal, draft domain.TaskDraft) (*domain.Task, error)
	UpdateTask(ctx context.Context, p domain.Principal, taskID string, patch domain.TaskPatch) (*domain.Task, error)
	DeleteTask(ctx context.Context, p domain.Principal, taskID string) error
	AssignUsers(ctx context.Context, p domain.Principal, taskID string, userIDs []string) (*domain.Task, error)
	UnassignUser(ctx context.Context, p domain.Principal, taskID, userID string) (*domain.Task, error)
}
