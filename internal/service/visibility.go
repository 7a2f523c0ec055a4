package service

import "github.com/bagdasarian/team-tasks/internal/domain"

// ResolveScope выбирает множество видимых задач.
// companyID == "" означает отсутствие контекста компании: тогда видны только личные задачи.
// Для компании вызывающий обязан заранее проверить членство и передать роль.
func ResolveScope(userID, companyID string, role domain.Role, filter domain.TaskFilter) domain.TaskScope {
	if filter.PersonalOnly || companyID == "" {
		return domain.TaskScope{Kind: domain.ScopePersonal, UserID: userID}
	}

	scope := domain.TaskScope{UserID: userID, CompanyID: companyID}
	switch {
	case filter.PublicOnly:
		scope.Kind = domain.ScopeCompanyPublic
	case filter.AssignedToMe:
		scope.Kind = domain.ScopeCompanyInvolved
	case !role.IsPrivileged():
		scope.Kind = domain.ScopeCompanyVisible
	default:
		scope.Kind = domain.ScopeCompanyAll
	}
	return scope
}

// targetCompany - компания из фильтра, иначе активная компания пользователя
func targetCompany(p domain.Principal, filter domain.TaskFilter) string {
	if filter.PersonalOnly {
		return ""
	}
	if filter.CompanyID != nil && *filter.CompanyID != "" {
		return *filter.CompanyID
	}
	if p.ActiveCompanyID != nil {
		return *p.ActiveCompanyID
	}
	return ""
}

func validateFilter(filter domain.TaskFilter) error {
	if filter.Status != nil && !filter.Status.IsValid() {
		return domain.NewValidationError("invalid status %q", *filter.Status)
	}
	if filter.Priority != nil && !filter.Priority.IsValid() {
		return domain.NewValidationError("invalid priority %q", *filter.Priority)
	}
	return nil
}
