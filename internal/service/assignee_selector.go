package service

import (
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

// UniqueUserIDs убирает пустые и повторяющиеся id, сохраняя порядок
func UniqueUserIDs(userIDs []string) []string {
	seen := make(map[string]struct{}, len(userIDs))
	result := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

// SelectNonMembers возвращает id, которых нет среди участников компании
func SelectNonMembers(userIDs []string, members []*domain.MemberView) []string {
	memberSet := make(map[string]struct{}, len(members))
	for _, m := range members {
		memberSet[m.UserID] = struct{}{}
	}

	nonMembers := make([]string, 0)
	for _, id := range userIDs {
		if _, ok := memberSet[id]; !ok {
			nonMembers = append(nonMembers, id)
		}
	}
	return nonMembers
}

// validateAssignees проверяет, что все назначаемые пользователи - участники компании
func validateAssignees(userIDs []string, members []*domain.MemberView) error {
	nonMembers := SelectNonMembers(userIDs, members)
	if len(nonMembers) > 0 {
		return domain.NewValidationError("%d of %d users are not members of this team", len(nonMembers), len(userIDs))
	}
	return nil
}
