package gallery_bulk_delete

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("gallery_bulk_delete: invalid input data")
)
