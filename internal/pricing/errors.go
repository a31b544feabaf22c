package pricing

import (
	"errors"
	"fmt"
)

// ErrValidation базовая ошибка для всех некорректных входных данных калькулятора
var ErrValidation = errors.New("pricing: validation failed")

// ValidationError описывает, какое поле запроса некорректно
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("pricing: invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
