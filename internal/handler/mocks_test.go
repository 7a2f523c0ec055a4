package handler

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/service"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (*service.AuthResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AuthResult), args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, p domain.Principal, update service.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, p, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockTaskService struct {
	mock.Mock
}

func (m *mockTaskService) ListVisibleTasks(ctx context.Context, p domain.Principal, filter domain.TaskFilter) (*domain.TaskPage, error) {
	args := m.Called(ctx, p, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskPage), args.Error(1)
}

func (m *mockTaskService) GetTask(ctx context.Context, p domain.Principal, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, p, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskService) CreateTask(ctx context.Context, p domain.Principal, draft domain.TaskDraft) (*domain.Task, error) {
	args := m.Called(ctx, p, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, p domain.Principal, taskID string, patch domain.TaskPatch) (*domain.Task, error) {
	args := m.Called(ctx, p, taskID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, p domain.Principal, taskID string) error {
	args := m.Called(ctx, p, taskID)
	return args.Error(0)
}

func (m *mockTaskService) AssignUsers(ctx context.Context, p domain.Principal, taskID string, userIDs []string) (*domain.Task, error) {
	args := m.Called(ctx, p, taskID, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskService) UnassignUser(ctx context.Context, p domain.Principal, taskID, userID string) (*domain.Task, error) {
	args := m.Called(ctx, p, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

type mockTeamService struct {
	mock.Mock
}

func (m *mockTeamService) CreateCompany(ctx context.Context, p domain.Principal, name string) (*domain.CompanyView, error) {
	args := m.Called(ctx, p, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyView), args.Error(1)
}

func (m *mockTeamService) ListMyCompanies(ctx context.Context, p domain.Principal) ([]*domain.CompanyView, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompanyView), args.Error(1)
}

func (m *mockTeamService) SwitchCompany(ctx context.Context, p domain.Principal, companyID string) (*domain.CompanyView, error) {
	args := m.Called(ctx, p, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyView), args.Error(1)
}

func (m *mockTeamService) ListMembers(ctx context.Context, p domain.Principal) ([]*domain.MemberView, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.MemberView), args.Error(1)
}

func (m *mockTeamService) UpdateMemberRole(ctx context.Context, p domain.Principal, userID string, role domain.Role) error {
	args := m.Called(ctx, p, userID, role)
	return args.Error(0)
}

func (m *mockTeamService) RemoveMember(ctx context.Context, p domain.Principal, userID string) error {
	args := m.Called(ctx, p, userID)
	return args.Error(0)
}

func (m *mockTeamService) TransferOwnership(ctx context.Context, p domain.Principal, newOwnerID string) error {
	args := m.Called(ctx, p, newOwnerID)
	return args.Error(0)
}

type mockInvitationService struct {
	mock.Mock
}

func (m *mockInvitationService) InviteMember(ctx context.Context, p domain.Principal, email string) (*domain.Invitation, error) {
	args := m.Called(ctx, p, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invitation), args.Error(1)
}

func (m *mockInvitationService) ListMyInvitations(ctx context.Context, p domain.Principal) ([]*domain.Invitation, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invitation), args.Error(1)
}

func (m *mockInvitationService) AcceptInvitation(ctx context.Context, p domain.Principal, invitationID string) (*domain.Membership, error) {
	args := m.Called(ctx, p, invitationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Membership), args.Error(1)
}

func (m *mockInvitationService) RejectInvitation(ctx context.Context, p domain.Principal, invitationID string) error {
	args := m.Called(ctx, p, invitationID)
	return args.Error(0)
}

type mockStatsService struct {
	mock.Mock
}

func (m *mockStatsService) TaskStats(ctx context.Context, p domain.Principal, filter domain.TaskFilter) (*domain.TaskStats, error) {
	args := m.Called(ctx, p, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskStats), args.Error(1)
}
