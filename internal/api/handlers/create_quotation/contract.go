package create_quotation

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
	createQuotation "github.com/m04kA/SMC-TourService/internal/usecase/create_quotation"
)

type CreateQuotationUseCase interface {
	Execute(ctx context.Context, req *createQuotation.Request) (*domain.Quotation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
