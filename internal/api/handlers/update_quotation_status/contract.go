package update_quotation_status

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
)

type QuotationService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.QuotationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
