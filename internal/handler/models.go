package handler

import (
	"encoding/json"
	"time"
)

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Nullable различает отсутствующее поле (Set == false) и явный null (Set == true, Value == nil)
type Nullable[T any] struct {
	Set   bool
	Value *T
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	n.Value = &v
	return nil
}

type RegisterRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	CompanyName *string `json:"companyName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Avatar    *string    `json:"avatar"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type UpdateProfileRequest struct {
	Name   *string          `json:"name"`
	Avatar Nullable[string] `json:"avatar"`
}

// TeamUserResponse - элемент GET /api/users; без активной компании роль не заполняется
type TeamUserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

type AuthResponse struct {
	User      UserResponse     `json:"user"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Company   *CompanyResponse `json:"company,omitempty"`
}

type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateCompanyRequest struct {
	Name string `json:"name"`
}

type SwitchCompanyRequest struct {
	CompanyID string `json:"companyId"`
}

type CreateTaskRequest struct {
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	DueDate         *time.Time `json:"dueDate"`
	Priority        *string    `json:"priority"`
	IsPublic        bool       `json:"isPublic"`
	CompanyID       *string    `json:"companyId"`
	AssignedUserIDs []string   `json:"assignedUserIds"`
}

type UpdateTaskRequest struct {
	Title           *string             `json:"title"`
	Description     Nullable[string]    `json:"description"`
	DueDate         Nullable[time.Time] `json:"dueDate"`
	Status          *string             `json:"status"`
	Priority        *string             `json:"priority"`
	IsPublic        *bool               `json:"isPublic"`
	AssignedUserIDs *[]string           `json:"assignedUserIds"`
}

type TaskResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	DueDate         *time.Time `json:"dueDate"`
	Status          string     `json:"status"`
	Priority        string     `json:"priority"`
	IsPublic        bool       `json:"isPublic"`
	CompanyID       *string    `json:"companyId"`
	CreatorID       string     `json:"creatorId"`
	AssignedUserIDs []string   `json:"assignedUserIds"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type TaskListResponse struct {
	Tasks      []TaskResponse     `json:"tasks"`
	Pagination PaginationResponse `json:"pagination"`
}

type AssignUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

type TaskStatsResponse struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
}

type MemberResponse struct {
	UserID   string    `json:"userId"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type UpdateMemberRequest struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

type TransferOwnershipRequest struct {
	NewOwnerID string `json:"newOwnerId"`
}

type InviteRequest struct {
	Email string `json:"email"`
}

type InvitationActionRequest struct {
	InvitationID string `json:"invitationId"`
}

type InvitationResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	CompanyID   string    `json:"companyId"`
	CompanyName string    `json:"companyName,omitempty"`
	InviterID   string    `json:"inviterId"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MembershipResponse struct {
	UserID    string    `json:"userId"`
	CompanyID string    `json:"companyId"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
