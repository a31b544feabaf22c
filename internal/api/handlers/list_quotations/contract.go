package list_quotations

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
)

type QuotationService interface {
	List(ctx context.Context, req *models.ListQuotationsRequest) (*models.QuotationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
