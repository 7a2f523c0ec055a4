package domain

import (
	"math"
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

type Task struct {
	ID              string
	Title           string
	Description     *string
	DueDate         *time.Time
	Status          TaskStatus
	Priority        TaskPriority
	IsPublic        bool
	CompanyID       *string
	CreatorID       string
	AssignedUserIDs []string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// IsPersonal - задача без компании
func (t *Task) IsPersonal() bool {
	return t.CompanyID == nil
}

func (t *Task) IsAssigned(userID string) bool {
	for _, id := range t.AssignedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// TaskDraft - данные для создания задачи
type TaskDraft struct {
	Title           string
	Description     *string
	DueDate         *time.Time
	Priority        *TaskPriority
	IsPublic        bool
	CompanyID       *string
	AssignedUserIDs []string
}

// TaskPatch - частичное обновление; nil означает "не менять".
// ClearDescription/ClearDueDate явно обнуляют поле.
type TaskPatch struct {
	Title            *string
	Description      *string
	ClearDescription bool
	DueDate          *time.Time
	ClearDueDate     bool
	Status           *TaskStatus
	Priority         *TaskPriority
	IsPublic         *bool
	AssignedUserIDs  *[]string
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// MaxPage держит смещение (Page-1)*PageSize в пределах int32
	MaxPage = math.MaxInt32/MaxPageSize + 1
)

// TaskFilter - параметры списка задач
type TaskFilter struct {
	PersonalOnly bool
	PublicOnly   bool
	AssignedToMe bool
	CompanyID    *string
	Status       *TaskStatus
	Priority     *TaskPriority
	Search       string
	Page         int
	PageSize     int
}

// Normalize приводит номер и размер страницы к допустимым значениям
func (f TaskFilter) Normalize() TaskFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
	if f.Page > MaxPage {
		f.Page = MaxPage
	}
	return f
}

type ScopeKind int

const (
	// ScopePersonal: company_id IS NULL AND creator_id = UserID
	ScopePersonal ScopeKind = iota
	// ScopeCompanyAll: все задачи компании
	ScopeCompanyAll
	// ScopeCompanyPublic: публичные задачи компании
	ScopeCompanyPublic
	// ScopeCompanyInvolved: автор или исполнитель
	ScopeCompanyInvolved
	// ScopeCompanyVisible: публичные, либо автор, либо исполнитель
	ScopeCompanyVisible
)

// TaskScope - множество задач, видимых пользователю, в терминах хранилища
type TaskScope struct {
	Kind      ScopeKind
	UserID    string
	CompanyID string
}

type TaskQuery struct {
	Scope    TaskScope
	Status   *TaskStatus
	Priority *TaskPriority
	Search   string
	Offset   int
	Limit    int
}

type TaskPage struct {
	Items      []*Task
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

func NewTaskPage(items []*Task, total, page, pageSize int) *TaskPage {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	if items == nil {
		items = []*Task{}
	}
	return &TaskPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// TaskStats - сводка по видимым задачам
type TaskStats struct {
	Total      int
	ByStatus   map[TaskStatus]int
	ByPriority map[TaskPriority]int
}
