package list_gallery

import (
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
)

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/gallery?category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	result, err := h.service.List(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /gallery - Failed to list images: category=%q, error=%v", category, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /gallery - Images retrieved: category=%q, count=%d", category, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
