package postgres

import (
	"context"
	"database/sql"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type statsRepository struct {
	executor DBExecutor
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{executor: db}
}

// GetTaskStats считает задачи по статусу и приоритету в пределах той же выборки, что и List
func (r *statsRepository) GetTaskStats(ctx context.Context, q domain.TaskQuery) (*domain.TaskStats, error) {
	where, args := buildTaskWhere(q)
	query := `
		SELECT t.status, t.priority, COUNT(*) AS count
		FROM tasks t
		WHERE ` + where + `
		GROUP BY t.status, t.priority
	`

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &domain.TaskStats{
		ByStatus:   make(map[domain.TaskStatus]int),
		ByPriority: make(map[domain.TaskPriority]int),
	}
	for rows.Next() {
		var status, priority string
		var count int
		if err := rows.Scan(&status, &priority, &count); err != nil {
			return nil, err
		}
		stats.Total += count
		stats.ByStatus[domain.TaskStatus(status)] += count
		stats.ByPriority[domain.TaskPriority(priority)] += count
	}

	return stats, rows.Err()
}
