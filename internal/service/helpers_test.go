package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/stretchr/testify/mock"
)

const (
	adminID   = "11111111-1111-1111-1111-111111111111"
	officerID = "22222222-2222-2222-2222-222222222222"
	memberID  = "33333333-3333-3333-3333-333333333333"
	outsideID = "44444444-4444-4444-4444-444444444444"
	companyID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"
	otherCoID = "eeeeeeee-eeee-eeee-eeee-eeeeeeeeeeee"
	taskID    = "bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"
	inviteID  = "cccccccc-cccc-cccc-cccc-cccccccccccc"
)

// fixture - набор моков репозиториев и транзакция поверх них
type fixture struct {
	users       *MockUserRepository
	companies   *MockCompanyRepository
	memberships *MockMembershipRepository
	tasks       *MockTaskRepository
	invitations *MockInvitationRepository
	stats       *MockStatsRepository
	tx          *MockTransactor
}

func newFixture() *fixture {
	f := &fixture{
		users:       new(MockUserRepository),
		companies:   new(MockCompanyRepository),
		memberships: new(MockMembershipRepository),
		tasks:       new(MockTaskRepository),
		invitations: new(MockInvitationRepository),
		stats:       new(MockStatsRepository),
	}
	f.tx = &MockTransactor{Repos: repository.Repositories{
		Users:       f.users,
		Companies:   f.companies,
		Memberships: f.memberships,
		Tasks:       f.tasks,
		Invitations: f.invitations,
	}}
	return f
}

func (f *fixture) directory() MembershipDirectory {
	return NewMembershipDirectory(f.memberships)
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.users.AssertExpectations(t)
	f.companies.AssertExpectations(t)
	f.memberships.AssertExpectations(t)
	f.tasks.AssertExpectations(t)
	f.invitations.AssertExpectations(t)
	f.stats.AssertExpectations(t)
}

// member регистрирует в моке членство пользователя
func (f *fixture) member(userID, company string, role domain.Role, m ...*domain.Membership) {
	membership := &domain.Membership{UserID: userID, CompanyID: company, Role: role}
	if len(m) > 0 {
		membership = m[0]
	}
	f.memberships.On("Get", mock.Anything, userID, company).Return(membership, nil)
}

func (f *fixture) notMember(userID, company string) {
	f.memberships.On("Get", mock.Anything, userID, company).Return(nil, repository.ErrNotFound)
}

func (f *fixture) members(company string, userIDs ...string) {
	views := make([]*domain.MemberView, 0, len(userIDs))
	for _, id := range userIDs {
		views = append(views, &domain.MemberView{UserID: id, Role: domain.RoleUser})
	}
	f.memberships.On("ListByCompany", mock.Anything, company).Return(views, nil)
}

func principal(userID string, company ...string) domain.Principal {
	p := domain.Principal{UserID: userID, Email: userID[:4] + "@x.com"}
	if len(company) > 0 {
		c := company[0]
		p.ActiveCompanyID = &c
	}
	return p
}

func strPtr(s string) *string {
	return &s
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func companyTask(creator string, public bool, assignees ...string) *domain.Task {
	if assignees == nil {
		assignees = []string{}
	}
	return &domain.Task{
		ID:              taskID,
		Title:           "task",
		Status:          domain.StatusPending,
		Priority:        domain.PriorityMedium,
		IsPublic:        public,
		CompanyID:       strPtr(companyID),
		CreatorID:       creator,
		AssignedUserIDs: assignees,
	}
}

func personalTask(creator string, public bool) *domain.Task {
	return &domain.Task{
		ID:              taskID,
		Title:           "mine",
		Status:          domain.StatusPending,
		Priority:        domain.PriorityMedium,
		IsPublic:        public,
		CreatorID:       creator,
		AssignedUserIDs: []string{},
	}
}
