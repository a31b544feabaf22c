package get_quotation

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
)

type QuotationService interface {
	GetByID(ctx context.Context, id int64) (*models.QuotationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
