package catalog

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет тура не найден или неактивен
	ErrPackageNotFound = errors.New("catalog.repository: tour package not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден или неактивен
	ErrVehicleNotFound = errors.New("catalog.repository: vehicle not found")

	ErrBuildQuery = errors.New("catalog.repository: failed to build query")
	ErrScanRow    = errors.New("catalog.repository: failed to scan row")
)
