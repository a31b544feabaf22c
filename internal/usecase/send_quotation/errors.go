package send_quotation

import "errors"

var (
	// ErrQuotationNotFound возвращается, когда котировка не найдена
	ErrQuotationNotFound = errors.New("send_quotation: quotation not found")

	// ErrInvalidStatus возвращается, когда котировку в текущем статусе нельзя отправить
	ErrInvalidStatus = errors.New("send_quotation: quotation cannot be sent in current status")

	// ErrQuotationExpired возвращается, когда срок действия котировки истёк
	ErrQuotationExpired = errors.New("send_quotation: quotation has expired")

	// ErrInvoiceFailed шаг 1: счёт не создан
	ErrInvoiceFailed = errors.New("send_quotation: failed to create invoice")

	// ErrEmailFailed шаг 2: письмо не отправлено, счёт остаётся
	ErrEmailFailed = errors.New("send_quotation: failed to send email")

	// ErrMarkSentFailed шаг 3: письмо ушло, но статус не обновлён
	ErrMarkSentFailed = errors.New("send_quotation: failed to mark quotation as sent")

	// ErrStatusChanged шаг 3: письмо ушло, но котировку за это время приняли или отклонили
	ErrStatusChanged = errors.New("send_quotation: quotation status changed while sending")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_quotation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_quotation: internal error")
)
