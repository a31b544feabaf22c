package upload_image

import (
	"context"
	"io"

	"github.com/m04kA/SMC-TourService/internal/integrations/cloudinary"
)

// ImageHost хостинг изображений
type ImageHost interface {
	Upload(ctx context.Context, file io.Reader, category string) (*cloudinary.UploadedImage, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
