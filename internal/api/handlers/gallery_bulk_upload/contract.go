package gallery_bulk_upload

import (
	"context"

	galleryUpload "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_upload"
)

type GalleryBulkUploadUseCase interface {
	Execute(ctx context.Context, req *galleryUpload.Request) (*galleryUpload.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
