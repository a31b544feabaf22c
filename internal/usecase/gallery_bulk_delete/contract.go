package gallery_bulk_delete

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id int64) error
}

// ImageHost интерфейс хостинга изображений
type ImageHost interface {
	Destroy(ctx context.Context, publicID string) error
}

// BulkObserver принимает итоги пакетных операций (метрики)
type BulkObserver interface {
	ObserveBulk(operation string, succeeded, failed int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
