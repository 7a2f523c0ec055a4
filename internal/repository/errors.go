package repository

import "errors"

var (
	// ErrNotFound - строка не найдена (или идентификатор некорректен)
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate - нарушено ограничение уникальности
	ErrDuplicate = errors.New("record already exists")
)
