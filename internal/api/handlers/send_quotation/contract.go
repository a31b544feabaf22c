package send_quotation

import (
	"context"

	sendQuotation "github.com/m04kA/SMC-TourService/internal/usecase/send_quotation"
)

type SendQuotationUseCase interface {
	Execute(ctx context.Context, req *sendQuotation.Request) (*sendQuotation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
