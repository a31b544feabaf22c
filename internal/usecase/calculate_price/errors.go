package calculate_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах расчёта
	// Всегда оборачивает *pricing.ValidationError
	ErrInvalidInput = errors.New("calculate_price: invalid input data")
)
