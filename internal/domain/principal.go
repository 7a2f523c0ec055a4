package domain

// Principal - аутентифицированный вызывающий.
// Роли здесь нет: она берется из членства при каждой операции.
type Principal struct {
	UserID          string
	Email           string
	ActiveCompanyID *string
}

func (p Principal) HasCompanyContext() bool {
	return p.ActiveCompanyID != nil && *p.ActiveCompanyID != ""
}

// CompanyID возвращает активную компанию или ErrCompanyContextRequired
func (p Principal) CompanyID() (string, error) {
	if !p.HasCompanyContext() {
		return "", ErrCompanyContextRequired
	}
	return *p.ActiveCompanyID, nil
}
