package airport_pickup_price

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("airport_pickup_price: vehicle not found")

	// ErrTooManyPassengers возвращается, когда пассажиров больше, чем мест
	ErrTooManyPassengers = errors.New("airport_pickup_price: not enough seats")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("airport_pickup_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("airport_pickup_price: internal error")
)
