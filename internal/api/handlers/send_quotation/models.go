package send_quotation

import (
	"time"

	sendQuotation "github.com/m04kA/SMC-TourService/internal/usecase/send_quotation"
)

// SendQuotationResponse HTTP response model
type SendQuotationResponse struct {
	QuotationID     int64  `json:"quotationId"`
	QuotationNumber string `json:"quotationNumber"`
	InvoiceID       int64  `json:"invoiceId"`
	InvoiceNumber   string `json:"invoiceNumber"`
	Status          string `json:"status"`
	SentAt          string `json:"sentAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *sendQuotation.Response) *SendQuotationResponse {
	return &SendQuotationResponse{
		QuotationID:     resp.QuotationID,
		QuotationNumber: resp.QuotationNumber,
		InvoiceID:       resp.InvoiceID,
		InvoiceNumber:   resp.InvoiceNumber,
		Status:          resp.Status,
		SentAt:          resp.SentAt.Format(time.RFC3339),
	}
}
