package create_quotation

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет тура не найден
	ErrPackageNotFound = errors.New("create_quotation: tour package not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_quotation: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	// Ошибки расчёта дополнительно оборачивают *pricing.ValidationError
	ErrInvalidInput = errors.New("create_quotation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_quotation: internal error")
)
