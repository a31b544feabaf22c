package delete_session

import (
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
)

const msgMissingToken = "требуется авторизация"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		h.logger.Warn("DELETE /sessions - Missing bearer token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("DELETE /sessions - Failed to logout: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	h.logger.Info("DELETE /sessions - Session closed: user_id=%d", userID)
	handlers.RespondNoContent(w)
}
