package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type StatsRepository interface {
	GetTaskStats(ctx context.Context, query domain.TaskQuery) (*domain.TaskStats, error)
}
