package gallery_bulk_delete

import (
	"context"

	galleryDelete "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_delete"
)

type GalleryBulkDeleteUseCase interface {
	Execute(ctx context.Context, req *galleryDelete.Request) (*galleryDelete.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
