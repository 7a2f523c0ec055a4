package service

import "github.com/bagdasarian/team-tasks/internal/domain"

type Operation int

const (
	OpRead Operation = iota
	OpUpdate
	OpDelete
	OpAssignUsers
)

func (o Operation) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpAssignUsers:
		return "assign users to"
	default:
		return "access"
	}
}

// CanAccess решает, может ли пользователь выполнить op над задачей.
// role - роль пользователя в компании задачи (RoleNone, если он не участник);
// для личных задач роль не учитывается.
func CanAccess(userID string, role domain.Role, task *domain.Task, op Operation) bool {
	creator := task.CreatorID == userID

	if task.IsPersonal() {
		switch op {
		case OpRead:
			return creator || task.IsPublic
		case OpUpdate, OpDelete:
			return creator
		default:
			return false
		}
	}

	privileged := role.IsPrivileged()
	assignee := task.IsAssigned(userID)

	switch op {
	case OpRead:
		return privileged || creator || assignee || task.IsPublic
	case OpUpdate:
		return privileged || creator || assignee
	case OpDelete, OpAssignUsers:
		return privileged || creator
	default:
		return false
	}
}
