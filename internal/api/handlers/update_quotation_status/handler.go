package update_quotation_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/service/quotations"
)

const (
	msgInvalidQuotationID = "некорректный ID котировки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "котировка не найдена"
	msgInvalidTransition  = "недопустимая смена статуса котировки"
)

type Handler struct {
	service QuotationService
	logger  Logger
}

func NewHandler(service QuotationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/quotations/{quotationId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quotationID, err := strconv.ParseInt(mux.Vars(r)["quotationId"], 10, 64)
	if err != nil || quotationID <= 0 {
		h.logger.Warn("PATCH /quotations/{id}/status - Invalid quotation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuotationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /quotations/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /quotations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PATCH /quotations/{id}/status - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	q, err := h.service.UpdateStatus(r.Context(), quotationID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, quotations.ErrQuotationNotFound):
			h.logger.Warn("PATCH /quotations/{id}/status - Quotation not found: quotation_id=%d", quotationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, quotations.ErrInvalidTransition):
			h.logger.Warn("PATCH /quotations/{id}/status - Invalid transition: quotation_id=%d, error=%v", quotationID, err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, quotations.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /quotations/{id}/status - Failed to update status: quotation_id=%d, error=%v",
				quotationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /quotations/{id}/status - Status updated: quotation_id=%d, status=%s, user_id=%d",
		quotationID, q.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, q)
}
