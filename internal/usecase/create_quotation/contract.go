package create_quotation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// QuotationRepository интерфейс репозитория котировок
type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) (*domain.Quotation, error)
}

// CatalogRepository интерфейс каталога пакетов и автомобилей
type CatalogRepository interface {
	GetPackage(ctx context.Context, id int64) (*domain.TourPackage, error)
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
