package send_quotation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/integrations/sendgrid"
)

// QuotationRepository интерфейс репозитория котировок
type QuotationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Quotation, error)
	UpdateStatus(ctx context.Context, id int64, from []domain.QuotationStatus, to domain.QuotationStatus, at time.Time) error
}

// InvoiceRepository интерфейс репозитория счетов
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) (*domain.Invoice, error)
	GetIssuedByQuotationID(ctx context.Context, quotationID int64) (*domain.Invoice, error)
}

// EmailSender интерфейс отправки писем
type EmailSender interface {
	SendInvoice(ctx context.Context, msg sendgrid.InvoiceEmail) error
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
