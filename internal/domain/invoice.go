package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the status of an invoice
type InvoiceStatus string

const (
	InvoiceIssued    InvoiceStatus = "issued"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice is issued from a quotation when it is sent to the customer
type Invoice struct {
	ID            int64
	InvoiceNumber string
	QuotationID   int64
	CustomerName  string
	CustomerEmail string

	Currency        string
	TotalAmount     decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal

	DueDate   time.Time
	Status    InvoiceStatus
	CreatedAt time.Time
}
