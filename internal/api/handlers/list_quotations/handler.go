package list_quotations

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/service/quotations"
	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
)

const (
	msgInvalidPagination = "некорректные параметры limit или offset"
	msgInvalidFilter     = "некорректный фильтр статуса или типа услуги"
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

// Handle GET /api/v1/quotations?status=&serviceType=&customerEmail=&limit=&offset=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := parseUint(query, "limit")
	if err != nil {
		h.logger.Warn("GET /quotations - Invalid limit: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}
	offset, err := parseUint(query, "offset")
	if err != nil {
		h.logger.Warn("GET /quotations - Invalid offset: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	serviceReq := &models.ListQuotationsRequest{
		Status:        optional(query, "status"),
		ServiceType:   optional(query, "serviceType"),
		CustomerEmail: optional(query, "customerEmail"),
		Limit:         limit,
		Offset:        offset,
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, quotations.ErrInvalidInput):
			h.logger.Warn("GET /quotations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /quotations - Failed to list quotations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quotations - Quotations retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func optional(query url.Values, key string) *string {
	v := query.Get(key)
	if v == "" {
		return nil
	}
	return &v
}

func parseUint(query url.Values, key string) (uint64, error) {
	v := query.Get(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseUint(v, 10, 64)
}
