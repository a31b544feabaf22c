package cloudinary

import "errors"

var (
	// ErrUpload возвращается, когда загрузка изображения не удалась
	ErrUpload = errors.New("cloudinary: upload failed")

	// ErrDestroy возвращается, когда удаление изображения не удалось
	ErrDestroy = errors.New("cloudinary: destroy failed")

	// ErrNotFound возвращается, когда изображения уже нет на стороне хостинга
	ErrNotFound = errors.New("cloudinary: asset not found")
)
