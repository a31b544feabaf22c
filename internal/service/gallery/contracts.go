package gallery

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ImageRepository интерфейс репозитория галереи
type ImageRepository interface {
	List(ctx context.Context, category *string) ([]*domain.GalleryImage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
