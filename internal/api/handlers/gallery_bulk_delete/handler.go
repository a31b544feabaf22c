package gallery_bulk_delete

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	galleryDelete "github.com/m04kA/SMC-TourService/internal/usecase/gallery_bulk_delete"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase GalleryBulkDeleteUseCase
	logger  Logger
}

func NewHandler(useCase GalleryBulkDeleteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/gallery/bulk-delete
// 200 если удалены все изображения, 207 если часть не удалилась
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gallery/bulk-delete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /gallery/bulk-delete - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	// Пакет доводится до конца, даже если клиент отключился
	result, err := h.useCase.Execute(context.WithoutCancel(r.Context()), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, galleryDelete.ErrInvalidInput):
			h.logger.Warn("POST /gallery/bulk-delete - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /gallery/bulk-delete - Failed to delete: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.FailureCount > 0 {
		status = http.StatusMultiStatus
	}

	h.logger.Info("POST /gallery/bulk-delete - Done: success=%d, failure=%d", result.SuccessCount, result.FailureCount)
	handlers.RespondJSON(w, status, &BulkResultResponse{
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
	})
}
