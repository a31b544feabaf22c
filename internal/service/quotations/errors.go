package quotations

import "errors"

var (
	// ErrQuotationNotFound возвращается, когда котировка не найдена
	ErrQuotationNotFound = errors.New("quotation not found")

	// ErrInvalidTransition возвращается при недопустимой смене статуса
	ErrInvalidTransition = errors.New("invalid quotation status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
