package sendgrid

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceEmail данные для письма со счётом по котировке
type InvoiceEmail struct {
	CustomerName    string
	CustomerEmail   string
	QuotationNumber string
	InvoiceNumber   string
	ServiceName     string
	StartDate       time.Time
	EndDate         time.Time
	Days            int
	Currency        string
	TotalAmount     decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	DueDate         time.Time
	ValidUntil      time.Time
}
