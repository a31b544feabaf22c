package airport_pickup_price

import (
	"context"

	airportPickup "github.com/m04kA/SMC-TourService/internal/usecase/airport_pickup_price"
)

type AirportPickupUseCase interface {
	Execute(ctx context.Context, req *airportPickup.Request) (*airportPickup.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
