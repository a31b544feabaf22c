package quotations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// QuotationRepository интерфейс репозитория котировок
type QuotationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Quotation, error)
	List(ctx context.Context, filter domain.QuotationsFilter) ([]*domain.Quotation, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.QuotationStatus, to domain.QuotationStatus, at time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
