package list_gallery

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/gallery/models"
)

type GalleryService interface {
	List(ctx context.Context, category string) (*models.ImageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
