package handlers

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// ValidationMessage формирует текст ошибки расчёта с указанием поля
// Если err не содержит *pricing.ValidationError, возвращает fallback
func ValidationMessage(err error, fallback string) string {
	var vErr *pricing.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("%s: поле %s: %s", fallback, vErr.Field, vErr.Reason)
	}
	return fallback
}
