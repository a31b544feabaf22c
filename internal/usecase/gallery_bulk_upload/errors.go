package gallery_bulk_upload

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("gallery_bulk_upload: invalid input data")
)
