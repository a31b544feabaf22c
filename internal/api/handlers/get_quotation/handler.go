package get_quotation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/service/quotations"
)

const (
	msgInvalidQuotationID = "некорректный ID котировки"
	msgNotFound           = "котировка не найдена"
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

// Handle GET /api/v1/quotations/{quotationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	quotationID, err := strconv.ParseInt(mux.Vars(r)["quotationId"], 10, 64)
	if err != nil || quotationID <= 0 {
		h.logger.Warn("GET /quotations/{id} - Invalid quotation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuotationID)
		return
	}

	q, err := h.service.GetByID(r.Context(), quotationID)
	if err != nil {
		switch {
		case errors.Is(err, quotations.ErrQuotationNotFound):
			h.logger.Warn("GET /quotations/{id} - Quotation not found: quotation_id=%d", quotationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /quotations/{id} - Failed to get quotation: quotation_id=%d, error=%v", quotationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quotations/{id} - Quotation retrieved: quotation_id=%d", quotationID)
	handlers.RespondJSON(w, http.StatusOK, q)
}
