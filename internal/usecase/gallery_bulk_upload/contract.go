package gallery_bulk_upload

import (
	"context"
	"io"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/integrations/cloudinary"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
}

// ImageHost интерфейс хостинга изображений
type ImageHost interface {
	Upload(ctx context.Context, file io.Reader, category string) (*cloudinary.UploadedImage, error)
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
