package airport_pickup_price

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// CatalogRepository интерфейс каталога автомобилей
type CatalogRepository interface {
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
