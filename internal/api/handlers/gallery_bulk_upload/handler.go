package gallery_bulk_upload

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	galleryUpload "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_upload"
)

const (
	formFieldImages = "images"

	// maxMemory часть формы, которая держится в памяти, остальное во временных файлах
	maxMemory = 32 << 20

	msgInvalidForm  = "некорректная multipart форма"
	msgInvalidInput = "нужны категория и хотя бы одно изображение"
)

type Handler struct {
	useCase GalleryBulkUploadUseCase
	logger  Logger
}

func NewHandler(useCase GalleryBulkUploadUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/gallery/bulk-upload
// 200 если загружены все файлы, 207 если часть не загрузилась
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		h.logger.Warn("POST /gallery/bulk-upload - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	req := toUseCaseRequest(r.MultipartForm)

	// Пакет доводится до конца, даже если клиент отключился
	result, err := h.useCase.Execute(context.WithoutCancel(r.Context()), req)
	if err != nil {
		switch {
		case errors.Is(err, galleryUpload.ErrInvalidInput):
			h.logger.Warn("POST /gallery/bulk-upload - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /gallery/bulk-upload - Failed to upload: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.FailureCount > 0 {
		status = http.StatusMultiStatus
	}

	h.logger.Info("POST /gallery/bulk-upload - Done: category=%s, success=%d, failure=%d",
		req.Category, result.SuccessCount, result.FailureCount)
	handlers.RespondJSON(w, status, &BulkResultResponse{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
	})
}
