package send_quotation

import "time"

// Request модель запроса на отправку котировки
type Request struct {
	QuotationID int64
	RequestedBy int64 // ID пользователя из сессии
}

// Response результат отправки
type Response struct {
	QuotationID     int64
	QuotationNumber string
	InvoiceID       int64
	InvoiceNumber   string
	Status          string
	SentAt          time.Time
}
