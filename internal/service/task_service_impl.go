package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

const maxTitleLength = 255

type taskService struct {
	transactor repository.Transactor
	taskRepo   repository.TaskRepository
	directory  MembershipDirectory
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(
	transactor repository.Transactor,
	taskRepo repository.TaskRepository,
	directory MembershipDirectory,
) TaskService {
	return &taskService{
		transactor: transactor,
		taskRepo:   taskRepo,
		directory:  directory,
	}
}

// resolveTaskScope проверяет членство в целевой компании и строит TaskScope
func resolveTaskScope(ctx context.Context, dir MembershipDirectory, p domain.Principal, filter domain.TaskFilter) (domain.TaskScope, error) {
	companyID := targetCompany(p, filter)
	if companyID == "" {
		return ResolveScope(p.UserID, "", domain.RoleNone, filter), nil
	}

	role, err := requireRole(ctx, dir, p.UserID, companyID)
	if err != nil {
		return domain.TaskScope{}, err
	}
	return ResolveScope(p.UserID, companyID, role, filter), nil
}

// ListVisibleTasks возвращает страницу задач, видимых пользователю
func (s *taskService) ListVisibleTasks(ctx context.Context, p domain.Principal, filter domain.TaskFilter) (*domain.TaskPage, error) {
	filter = filter.Normalize()
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	scope, err := resolveTaskScope(ctx, s.directory, p, filter)
	if err != nil {
		return nil, err
	}

	query := domain.TaskQuery{
		Scope:    scope,
		Status:   filter.Status,
		Priority: filter.Priority,
		Search:   strings.TrimSpace(filter.Search),
		Offset:   (filter.Page - 1) * filter.PageSize,
		Limit:    filter.PageSize,
	}

	tasks, total, err := s.taskRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return domain.NewTaskPage(tasks, total, filter.Page, filter.PageSize), nil
}

// loadTask загружает задачу и проверяет доступ к ней
func (s *taskService) loadTask(ctx context.Context, p domain.Principal, taskID string, op Operation) (*domain.Task, domain.Role, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.RoleNone, domain.NewNotFoundError("task")
		}
		return nil, domain.RoleNone, fmt.Errorf("get task: %w", err)
	}

	role, err := roleInTaskCompany(ctx, s.directory, p.UserID, task)
	if err != nil {
		return nil, domain.RoleNone, err
	}

	if !CanAccess(p.UserID, role, task, op) {
		return nil, domain.RoleNone, domain.NewForbiddenError(fmt.Sprintf("you cannot %s this task", op))
	}
	return task, role, nil
}

// GetTask возвращает задачу, если пользователь может ее читать
func (s *taskService) GetTask(ctx context.Context, p domain.Principal, taskID string) (*domain.Task, error) {
	task, _, err := s.loadTask(ctx, p, taskID, OpRead)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// CreateTask создает задачу; компания по умолчанию берется из активного контекста
func (s *taskService) CreateTask(ctx context.Context, p domain.Principal, draft domain.TaskDraft) (*domain.Task, error) {
	title, err := validateTitle(draft.Title)
	if err != nil {
		return nil, err
	}

	priority := domain.PriorityMedium
	if draft.Priority != nil {
		if !draft.Priority.IsValid() {
			return nil, domain.NewValidationError("invalid priority %q", *draft.Priority)
		}
		priority = *draft.Priority
	}

	companyID := draft.CompanyID
	if companyID == nil && p.HasCompanyContext() {
		companyID = p.ActiveCompanyID
	}

	assignees := UniqueUserIDs(draft.AssignedUserIDs)

	task := &domain.Task{
		Title:           title,
		Description:     normalizeOptional(draft.Description),
		DueDate:         draft.DueDate,
		Status:          domain.StatusPending,
		Priority:        priority,
		IsPublic:        draft.IsPublic,
		CompanyID:       companyID,
		CreatorID:       p.UserID,
		AssignedUserIDs: assignees,
	}

	if task.IsPersonal() {
		if len(assignees) > 0 {
			return nil, domain.NewValidationError("cannot assign users to personal tasks")
		}
	} else {
		if _, err := requireRole(ctx, s.directory, p.UserID, *companyID); err != nil {
			return nil, err
		}
		if len(assignees) > 0 {
			if err := s.checkAssignees(ctx, *companyID, assignees); err != nil {
				return nil, err
			}
		}
	}

	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		return repos.Tasks.Create(ctx, task)
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// UpdateTask применяет частичное обновление. Если передан AssignedUserIDs,
// набор исполнителей заменяется целиком в той же транзакции.
func (s *taskService) UpdateTask(ctx context.Context, p domain.Principal, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	task, role, err := s.loadTask(ctx, p, taskID, OpUpdate)
	if err != nil {
		return nil, err
	}

	var assignees []string
	replaceAssignees := false
	if patch.AssignedUserIDs != nil {
		assignees = UniqueUserIDs(*patch.AssignedUserIDs)
		if task.IsPersonal() {
			if len(assignees) > 0 {
				return nil, domain.NewValidationError("cannot assign users to personal tasks")
			}
		} else {
			if !CanAccess(p.UserID, role, task, OpAssignUsers) {
				return nil, domain.NewForbiddenError("you cannot assign users to this task")
			}
			if len(assignees) > 0 {
				if err := s.checkAssignees(ctx, *task.CompanyID, assignees); err != nil {
					return nil, err
				}
			}
			replaceAssignees = true
		}
	}

	if err := applyPatch(task, patch); err != nil {
		return nil, err
	}

	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		if err := repos.Tasks.Update(ctx, task); err != nil {
			return err
		}
		if replaceAssignees {
			return repos.Tasks.ReplaceAssignees(ctx, task.ID, assignees)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	if replaceAssignees {
		task.AssignedUserIDs = assignees
	}
	return task, nil
}

// DeleteTask удаляет задачу (автор, ADMIN или OFFICER компании)
func (s *taskService) DeleteTask(ctx context.Context, p domain.Principal, taskID string) error {
	task, _, err := s.loadTask(ctx, p, taskID, OpDelete)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, task.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NewNotFoundError("task")
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// AssignUsers добавляет исполнителей к задаче компании (повторное назначение игнорируется)
func (s *taskService) AssignUsers(ctx context.Context, p domain.Principal, taskID string, userIDs []string) (*domain.Task, error) {
	task, err := s.loadAssignable(ctx, p, taskID)
	if err != nil {
		return nil, err
	}

	assignees := UniqueUserIDs(userIDs)
	if len(assignees) == 0 {
		return nil, domain.NewValidationError("at least one user id is required")
	}
	if err := s.checkAssignees(ctx, *task.CompanyID, assignees); err != nil {
		return nil, err
	}

	err = s.transactor.WithinTx(ctx, func(repos repository.Repositories) error {
		for _, userID := range assignees {
			if err := repos.Tasks.AddAssignee(ctx, task.ID, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assign users: %w", err)
	}

	for _, userID := range assignees {
		if !task.IsAssigned(userID) {
			task.AssignedUserIDs = append(task.AssignedUserIDs, userID)
		}
	}
	return task, nil
}

// UnassignUser снимает исполнителя с задачи компании
func (s *taskService) UnassignUser(ctx context.Context, p domain.Principal, taskID, userID string) (*domain.Task, error) {
	task, err := s.loadAssignable(ctx, p, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.RemoveAssignee(ctx, task.ID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("assignment")
		}
		return nil, fmt.Errorf("unassign user: %w", err)
	}

	remaining := make([]string, 0, len(task.AssignedUserIDs))
	for _, id := range task.AssignedUserIDs {
		if id != userID {
			remaining = append(remaining, id)
		}
	}
	task.AssignedUserIDs = remaining
	return task, nil
}

func (s *taskService) loadAssignable(ctx context.Context, p domain.Principal, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	if task.IsPersonal() {
		return nil, domain.NewValidationError("cannot assign users to personal tasks")
	}

	role, err := s.directory.GetRole(ctx, p.UserID, *task.CompanyID)
	if err != nil {
		return nil, err
	}
	if !CanAccess(p.UserID, role, task, OpAssignUsers) {
		return nil, domain.NewForbiddenError("you cannot assign users to this task")
	}
	return task, nil
}

func (s *taskService) checkAssignees(ctx context.Context, companyID string, userIDs []string) error {
	members, err := s.directory.ListMembers(ctx, companyID)
	if err != nil {
		return err
	}
	return validateAssignees(userIDs, members)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.NewValidationError("title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "", domain.NewValidationError("title must be at most %d characters", maxTitleLength)
	}
	return title, nil
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func applyPatch(task *domain.Task, patch domain.TaskPatch) error {
	if patch.Title != nil {
		title, err := validateTitle(*patch.Title)
		if err != nil {
			return err
		}
		task.Title = title
	}

	if patch.ClearDescription {
		task.Description = nil
	} else if patch.Description != nil {
		task.Description = normalizeOptional(patch.Description)
	}

	if patch.ClearDueDate {
		task.DueDate = nil
	} else if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}

	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return domain.NewValidationError("invalid status %q", *patch.Status)
		}
		task.Status = *patch.Status
	}

	if patch.Priority != nil {
		if !patch.Priority.IsValid() {
			return domain.NewValidationError("invalid priority %q", *patch.Priority)
		}
		task.Priority = *patch.Priority
	}

	if patch.IsPublic != nil {
		task.IsPublic = *patch.IsPublic
	}
	return nil
}
