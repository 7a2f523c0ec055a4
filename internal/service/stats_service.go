package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type StatsService interface {
	TaskStats(ctx context.Context, p domain.Principal, filter domain.TaskFilter) (*domain.TaskStats, error)
}
