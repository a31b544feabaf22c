package gallery

import "errors"

var (
	// ErrImageNotFound возвращается, когда изображение не найдено
	ErrImageNotFound = errors.New("gallery.repository: image not found")

	ErrBuildQuery = errors.New("gallery.repository: failed to build query")
	ErrExecQuery  = errors.New("gallery.repository: failed to execute query")
	ErrScanRow    = errors.New("gallery.repository: failed to scan row")
)
