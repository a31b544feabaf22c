package gallery_bulk_upload

import (
	"io"
	"mime/multipart"

	galleryUpload "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_upload"
)

// BulkResultResponse HTTP response model
type BulkResultResponse struct {
	SuccessCount int `json:"successCount"`
	FailureCount int `json:"failureCount"`
}

// toUseCaseRequest собирает запрос use case из multipart формы
// Файлы открываются лениво, по одному на время загрузки
func toUseCaseRequest(form *multipart.Form) *galleryUpload.Request {
	req := &galleryUpload.Request{
		Category: first(form.Value["category"]),
		Title:    first(form.Value["title"]),
	}

	for _, fh := range form.File[formFieldImages] {
		fh := fh
		req.Files = append(req.Files, galleryUpload.File{
			Filename: fh.Filename,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return req
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
