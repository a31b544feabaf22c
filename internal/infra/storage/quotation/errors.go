package quotation

import "errors"

var (
	// ErrQuotationNotFound возвращается, когда котировка не найдена
	ErrQuotationNotFound = errors.New("quotation.repository: quotation not found")

	// ErrStatusConflict возвращается, когда статус котировки уже не тот, из которого делается переход
	ErrStatusConflict = errors.New("quotation.repository: quotation status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("quotation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("quotation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("quotation.repository: failed to scan row")
)
