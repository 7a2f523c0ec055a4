package domain

import "fmt"

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrUnauthenticated - нет валидного пользователя
	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "authentication required",
	}

	// ErrForbidden - у пользователя нет роли или связи с ресурсом
	ErrForbidden = &DomainError{
		Code:    CodeForbidden,
		Message: "access denied",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "invalid input",
	}

	// ErrConflict - нарушение инварианта при изменении
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "conflict",
	}

	// ErrCompanyContextRequired - операция требует активную компанию
	ErrCompanyContextRequired = &DomainError{
		Code:    CodeValidation,
		Message: "company context required",
	}

	// ErrNotCompanyMember - пользователь не состоит в компании
	ErrNotCompanyMember = &DomainError{
		Code:    CodeForbidden,
		Message: "not a member of this company",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewForbiddenError(message string) *DomainError {
	return &DomainError{Code: CodeForbidden, Message: message}
}

func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...any) *DomainError {
	return &DomainError{Code: CodeConflict, Message: fmt.Sprintf(format, args...)}
}
