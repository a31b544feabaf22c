package upload_image

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
)

const (
	formFieldImage  = "image"
	formFieldFolder = "folder"

	maxMemory = 10 << 20

	msgInvalidForm  = "некорректная multipart форма"
	msgImageMissing = "не передано изображение"
	msgUploadFailed = "не удалось загрузить изображение"
)

type Handler struct {
	imageHost ImageHost
	logger    Logger
}

func NewHandler(imageHost ImageHost, logger Logger) *Handler {
	return &Handler{
		imageHost: imageHost,
		logger:    logger,
	}
}

// Handle POST /api/v1/uploads
// Загружает одно изображение из поля image и возвращает его URL
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		h.logger.Warn("POST /uploads - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile(formFieldImage)
	if err != nil {
		h.logger.Warn("POST /uploads - Image missing: %v", err)
		handlers.RespondBadRequest(w, msgImageMissing)
		return
	}
	defer file.Close()

	folder := strings.TrimSpace(r.FormValue(formFieldFolder))

	uploaded, err := h.imageHost.Upload(r.Context(), file, folder)
	if err != nil {
		h.logger.Error("POST /uploads - Failed to upload %s: %v", header.Filename, err)
		handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)
		return
	}

	h.logger.Info("POST /uploads - Uploaded %s: public_id=%s", header.Filename, uploaded.PublicID)
	handlers.RespondJSON(w, http.StatusOK, &UploadResponse{URL: uploaded.URL})
}
