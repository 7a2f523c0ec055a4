package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
	directory MembershipDirectory
}

func NewStatsService(statsRepo repository.StatsRepository, directory MembershipDirectory) StatsService {
	return &statsService{statsRepo: statsRepo, directory: directory}
}

// TaskStats считает задачи в той же области видимости, что и ListVisibleTasks (без пагинации)
func (s *statsService) TaskStats(ctx context.Context, p domain.Principal, filter domain.TaskFilter) (*domain.TaskStats, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	scope, err := resolveTaskScope(ctx, s.directory, p, filter)
	if err != nil {
		return nil, err
	}

	stats, err := s.statsRepo.GetTaskStats(ctx, domain.TaskQuery{
		Scope:    scope,
		Status:   filter.Status,
		Priority: filter.Priority,
		Search:   strings.TrimSpace(filter.Search),
	})
	if err != nil {
		return nil, fmt.Errorf("task stats: %w", err)
	}
	return stats, nil
}
