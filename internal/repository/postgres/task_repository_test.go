package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskRepo(t *testing.T) (*taskRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewTaskRepository(db), mock
}

var taskRowColumns = []string{
	"id", "title", "description", "due_date", "status", "priority", "is_public",
	"company_id", "creator_id", "created_at", "updated_at", "assignees",
}

func companyPtr(id string) *string {
	return &id
}

func TestTaskRepository_Create(t *testing.T) {
	t.Run("задача компании с исполнителями", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		task := &domain.Task{
			Title:           "Ship release",
			Status:          domain.StatusPending,
			Priority:        domain.PriorityHigh,
			IsPublic:        true,
			CompanyID:       companyPtr(companyID1),
			CreatorID:       userID1,
			AssignedUserIDs: []string{userID2, userID3},
		}

		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs(sqlmock.AnyArg(), "Ship release", nil, nil, "PENDING", "HIGH", true, companyID1, userID1, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))
		mock.ExpectExec("INSERT INTO user_tasks").
			WithArgs(sqlmock.AnyArg(), userID2, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO user_tasks").
			WithArgs(sqlmock.AnyArg(), userID3, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), task)

		require.NoError(t, err)
		assert.NotEmpty(t, task.ID)
		assert.Equal(t, now, task.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("личная задача без исполнителей", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		desc := "buy milk"
		task := &domain.Task{
			Title:       "Groceries",
			Description: &desc,
			Status:      domain.StatusPending,
			Priority:    domain.PriorityMedium,
			CreatorID:   userID1,
		}

		mock.ExpectQuery("INSERT INTO tasks").
			WithArgs(sqlmock.AnyArg(), "Groceries", "buy milk", nil, "PENDING", "MEDIUM", false, nil, userID1, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		err := repo.Create(context.Background(), task)

		require.NoError(t, err)
		assert.Equal(t, []string{}, task.AssignedUserIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_GetByID(t *testing.T) {
	t.Run("задача с исполнителями", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		due := now.Add(48 * time.Hour)
		rows := sqlmock.NewRows(taskRowColumns).
			AddRow(taskID1, "Ship", "notes", due, "IN_PROGRESS", "URGENT", false,
				companyID1, userID1, now, nil, userID2+","+userID3)
		mock.ExpectQuery("FROM tasks t WHERE t.id = ").
			WithArgs(taskID1).
			WillReturnRows(rows)

		task, err := repo.GetByID(context.Background(), taskID1)

		require.NoError(t, err)
		assert.Equal(t, "Ship", task.Title)
		require.NotNil(t, task.Description)
		assert.Equal(t, "notes", *task.Description)
		require.NotNil(t, task.DueDate)
		assert.Equal(t, due, *task.DueDate)
		assert.Equal(t, domain.StatusInProgress, task.Status)
		assert.Equal(t, domain.PriorityUrgent, task.Priority)
		require.NotNil(t, task.CompanyID)
		assert.Equal(t, companyID1, *task.CompanyID)
		assert.Equal(t, []string{userID2, userID3}, task.AssignedUserIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("личная задача", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		rows := sqlmock.NewRows(taskRowColumns).
			AddRow(taskID1, "Mine", nil, nil, "PENDING", "LOW", true, nil, userID1, time.Now(), nil, "")
		mock.ExpectQuery("FROM tasks t").
			WithArgs(taskID1).
			WillReturnRows(rows)

		task, err := repo.GetByID(context.Background(), taskID1)

		require.NoError(t, err)
		assert.True(t, task.IsPersonal())
		assert.Nil(t, task.Description)
		assert.Empty(t, task.AssignedUserIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("задача не найдена", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectQuery("FROM tasks t").
			WithArgs(taskID1).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), taskID1)

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_Update(t *testing.T) {
	repo, mock := setupTaskRepo(t)

	updated := time.Now()
	task := &domain.Task{
		ID:       taskID1,
		Title:    "Renamed",
		Status:   domain.StatusCompleted,
		Priority: domain.PriorityLow,
	}

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(taskID1, "Renamed", nil, nil, "COMPLETED", "LOW", false, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(updated))

	err := repo.Update(context.Background(), task)

	require.NoError(t, err)
	require.NotNil(t, task.UpdatedAt)
	assert.Equal(t, updated, *task.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_Delete(t *testing.T) {
	t.Run("задача удалена", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(taskID1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), taskID1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("повторное удаление", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectExec("DELETE FROM tasks").
			WithArgs(taskID1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), taskID1), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_List(t *testing.T) {
	query := domain.TaskQuery{
		Scope:  domain.TaskScope{Kind: domain.ScopeCompanyVisible, UserID: userID1, CompanyID: companyID1},
		Offset: 0,
		Limit:  10,
	}

	t.Run("страница задач", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		now := time.Now()
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tasks t`).
			WithArgs(companyID1, userID1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		rows := sqlmock.NewRows(taskRowColumns).
			AddRow(taskID1, "Newest", nil, nil, "PENDING", "LOW", true, companyID1, userID2, now, nil, "").
			AddRow(taskID2, "Older", nil, nil, "PENDING", "LOW", false, companyID1, userID1, now.Add(-time.Hour), nil, userID3)
		mock.ExpectQuery("ORDER BY t.created_at DESC").
			WithArgs(companyID1, userID1, 10, 0).
			WillReturnRows(rows)

		tasks, total, err := repo.List(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, tasks, 2)
		assert.Equal(t, "Newest", tasks[0].Title)
		assert.Equal(t, []string{userID3}, tasks[1].AssignedUserIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("пустой результат не запрашивает строки", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tasks t`).
			WithArgs(companyID1, userID1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		tasks, total, err := repo.List(context.Background(), query)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("страница за пределами выборки", func(t *testing.T) {
		repo, mock := setupTaskRepo(t)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM tasks t`).
			WithArgs(companyID1, userID1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		q := query
		q.Offset = 10
		tasks, total, err := repo.List(context.Background(), q)

		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Empty(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTaskRepository_ReplaceAssignees(t *testing.T) {
	repo, mock := setupTaskRepo(t)

	mock.ExpectExec("DELETE FROM user_tasks WHERE task_id").
		WithArgs(taskID1).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO user_tasks").
		WithArgs(sqlmock.AnyArg(), userID3, taskID1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReplaceAssignees(context.Background(), taskID1, []string{userID3})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_RemoveAssignee(t *testing.T) {
	repo, mock := setupTaskRepo(t)

	mock.ExpectExec("DELETE FROM user_tasks").
		WithArgs(taskID1, userID2).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveAssignee(context.Background(), taskID1, userID2)

	assert.ErrorIs(t, err, repository.ErrNotFound, "исполнитель не был назначен")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ClearCompanyAssignments(t *testing.T) {
	repo, mock := setupTaskRepo(t)

	mock.ExpectExec("DELETE FROM user_tasks ut").
		WithArgs(companyID1, userID2).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ClearCompanyAssignments(context.Background(), companyID1, userID2)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
