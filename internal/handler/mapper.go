package handler

import (
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/service"
)

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func profileRequestToService(req UpdateProfileRequest) service.ProfileUpdate {
	return service.ProfileUpdate{
		Name:        req.Name,
		Avatar:      req.Avatar.Value,
		ClearAvatar: req.Avatar.Set && req.Avatar.Value == nil,
	}
}

func domainMembersToTeamUsers(members []*domain.MemberView) []TeamUserResponse {
	result := make([]TeamUserResponse, 0, len(members))
	for _, m := range members {
		result = append(result, TeamUserResponse{
			ID:    m.UserID,
			Email: m.Email,
			Name:  m.Name,
			Role:  string(m.Role),
		})
	}
	return result
}

func domainCompanyToHTTP(view *domain.CompanyView) CompanyResponse {
	return CompanyResponse{
		ID:        view.Company.ID,
		Name:      view.Company.Name,
		Role:      string(view.Role),
		CreatedAt: view.Company.CreatedAt,
	}
}

func domainCompaniesToHTTP(views []*domain.CompanyView) []CompanyResponse {
	result := make([]CompanyResponse, 0, len(views))
	for _, view := range views {
		result = append(result, domainCompanyToHTTP(view))
	}
	return result
}

func domainAuthToHTTP(res *service.AuthResult) AuthResponse {
	resp := AuthResponse{
		User:      domainUserToHTTP(res.User),
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	}
	if res.Company != nil {
		company := domainCompanyToHTTP(res.Company)
		resp.Company = &company
	}
	return resp
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	assignees := task.AssignedUserIDs
	if assignees == nil {
		assignees = []string{}
	}

	return TaskResponse{
		ID:              task.ID,
		Title:           task.Title,
		Description:     task.Description,
		DueDate:         task.DueDate,
		Status:          string(task.Status),
		Priority:        string(task.Priority),
		IsPublic:        task.IsPublic,
		CompanyID:       task.CompanyID,
		CreatorID:       task.CreatorID,
		AssignedUserIDs: assignees,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

func domainTaskPageToHTTP(page *domain.TaskPage) TaskListResponse {
	tasks := make([]TaskResponse, 0, len(page.Items))
	for _, task := range page.Items {
		tasks = append(tasks, domainTaskToHTTP(task))
	}

	return TaskListResponse{
		Tasks: tasks,
		Pagination: PaginationResponse{
			Page:       page.Page,
			Limit:      page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
		},
	}
}

func httpCreateTaskToDomain(req CreateTaskRequest) domain.TaskDraft {
	draft := domain.TaskDraft{
		Title:           req.Title,
		Description:     req.Description,
		DueDate:         req.DueDate,
		IsPublic:        req.IsPublic,
		CompanyID:       req.CompanyID,
		AssignedUserIDs: req.AssignedUserIDs,
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		draft.Priority = &priority
	}
	return draft
}

func httpUpdateTaskToDomain(req UpdateTaskRequest) domain.TaskPatch {
	patch := domain.TaskPatch{
		Title:           req.Title,
		IsPublic:        req.IsPublic,
		AssignedUserIDs: req.AssignedUserIDs,
	}

	if req.Description.Set {
		patch.Description = req.Description.Value
		patch.ClearDescription = req.Description.Value == nil
	}
	if req.DueDate.Set {
		patch.DueDate = req.DueDate.Value
		patch.ClearDueDate = req.DueDate.Value == nil
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}
	return patch
}

func domainStatsToHTTP(stats *domain.TaskStats) TaskStatsResponse {
	resp := TaskStatsResponse{
		Total:      stats.Total,
		ByStatus:   make(map[string]int, len(stats.ByStatus)),
		ByPriority: make(map[string]int, len(stats.ByPriority)),
	}
	for status, n := range stats.ByStatus {
		resp.ByStatus[string(status)] = n
	}
	for priority, n := range stats.ByPriority {
		resp.ByPriority[string(priority)] = n
	}
	return resp
}

func domainMembersToHTTP(members []*domain.MemberView) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, MemberResponse{
			UserID:   m.UserID,
			Email:    m.Email,
			Name:     m.Name,
			Role:     string(m.Role),
			JoinedAt: m.JoinedAt,
		})
	}
	return result
}

func domainInvitationToHTTP(inv *domain.Invitation) InvitationResponse {
	return InvitationResponse{
		ID:          inv.ID,
		Email:       inv.Email,
		CompanyID:   inv.CompanyID,
		CompanyName: inv.CompanyName,
		InviterID:   inv.InviterID,
		Status:      string(inv.Status),
		CreatedAt:   inv.CreatedAt,
	}
}

func domainInvitationsToHTTP(invitations []*domain.Invitation) []InvitationResponse {
	result := make([]InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		result = append(result, domainInvitationToHTTP(inv))
	}
	return result
}

func domainMembershipToHTTP(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		UserID:    m.UserID,
		CompanyID: m.CompanyID,
		Role:      string(m.Role),
		JoinedAt:  m.JoinedAt,
	}
}
