package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

func NewTaskRepositoryWithTx(tx *sql.Tx) *taskRepository {
	return &taskRepository{executor: tx}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{}
	var description sql.NullString
	var dueDate, updatedAt sql.NullTime
	var companyID sql.NullString
	var status, priority, assignees string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&dueDate,
		&status,
		&priority,
		&task.IsPublic,
		&companyID,
		&task.CreatorID,
		&task.CreatedAt,
		&updatedAt,
		&assignees,
	)
	if err != nil {
		return nil, err
	}

	task.Description = stringPtr(description)
	task.DueDate = timePtr(dueDate)
	task.CompanyID = stringPtr(companyID)
	task.UpdatedAt = timePtr(updatedAt)
	task.Status = domain.TaskStatus(status)
	task.Priority = domain.TaskPriority(priority)
	task.AssignedUserIDs = splitAssignees(assignees)
	return task, nil
}

// Create сохраняет задачу и ее исполнителей
func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, title, description, due_date, status, priority, is_public, company_id, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	task.ID = newID()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		string(task.Priority),
		task.IsPublic,
		task.CompanyID,
		task.CreatorID,
		time.Now(),
	).Scan(&task.CreatedAt)
	if err != nil {
		task.ID = ""
		return mapError(err)
	}
	task.UpdatedAt = nil

	for _, userID := range task.AssignedUserIDs {
		if err := r.AddAssignee(ctx, task.ID, userID); err != nil {
			return err
		}
	}
	if task.AssignedUserIDs == nil {
		task.AssignedUserIDs = []string{}
	}
	return nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	taskID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + taskColumns + ` FROM tasks t WHERE t.id = $1`
	task, err := scanTask(r.executor.QueryRowContext(ctx, query, taskID))
	if err != nil {
		return nil, mapError(err)
	}
	return task, nil
}

// Update сохраняет изменяемые поля задачи; исполнители не затрагиваются
func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	taskID, err := parseID(task.ID)
	if err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET title = $2, description = $3, due_date = $4, status = $5, priority = $6,
			is_public = $7, updated_at = $8
		WHERE id = $1
		RETURNING updated_at
	`

	var updatedAt sql.NullTime
	err = r.executor.QueryRowContext(
		ctx,
		query,
		taskID,
		task.Title,
		task.Description,
		task.DueDate,
		string(task.Status),
		string(task.Priority),
		task.IsPublic,
		time.Now(),
	).Scan(&updatedAt)
	if err != nil {
		return mapError(err)
	}
	task.UpdatedAt = timePtr(updatedAt)
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	taskID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// List возвращает страницу задач и общее количество строк под условием
func (r *taskRepository) List(ctx context.Context, q domain.TaskQuery) ([]*domain.Task, int, error) {
	where, args := buildTaskWhere(q)

	var total int
	countQuery := `SELECT COUNT(*) FROM tasks t WHERE ` + where
	if err := r.executor.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	tasks := []*domain.Task{}
	if total == 0 || q.Offset >= total {
		return tasks, total, nil
	}

	listQuery := fmt.Sprintf(
		`SELECT %s FROM tasks t WHERE %s ORDER BY t.created_at DESC, t.id LIMIT $%d OFFSET $%d`,
		taskColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, q.Limit, q.Offset)

	rows, err := r.executor.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, task)
	}

	return tasks, total, rows.Err()
}

// ReplaceAssignees заменяет набор исполнителей целиком
func (r *taskRepository) ReplaceAssignees(ctx context.Context, taskID string, userIDs []string) error {
	id, err := parseID(taskID)
	if err != nil {
		return err
	}

	if _, err := r.executor.ExecContext(ctx, `DELETE FROM user_tasks WHERE task_id = $1`, id); err != nil {
		return err
	}

	for _, userID := range userIDs {
		if err := r.AddAssignee(ctx, id, userID); err != nil {
			return err
		}
	}
	return nil
}

// AddAssignee идемпотентно добавляет исполнителя
func (r *taskRepository) AddAssignee(ctx context.Context, taskID, userID string) error {
	query := `
		INSERT INTO user_tasks (id, user_id, task_id, assigned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, task_id) DO NOTHING
	`

	_, err := r.executor.ExecContext(ctx, query, newID(), userID, taskID, time.Now())
	return mapError(err)
}

func (r *taskRepository) RemoveAssignee(ctx context.Context, taskID, userID string) error {
	tid, err := parseID(taskID)
	if err != nil {
		return err
	}
	uid, err := parseID(userID)
	if err != nil {
		return err
	}

	result, err := r.executor.ExecContext(ctx, `
		DELETE FROM user_tasks
		WHERE task_id = $1 AND user_id = $2
	`, tid, uid)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// ClearCompanyAssignments снимает пользователя со всех задач компании
func (r *taskRepository) ClearCompanyAssignments(ctx context.Context, companyID, userID string) (int, error) {
	query := `
		DELETE FROM user_tasks ut
		USING tasks t
		WHERE ut.task_id = t.id AND t.company_id = $1 AND ut.user_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, companyID, userID)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
