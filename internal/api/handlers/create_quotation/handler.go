package create_quotation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/service/quotations/models"
	createQuotation "github.com/m04kA/SMC-TourService/internal/usecase/create_quotation"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgPackageNotFound    = "пакет тура не найден"
	msgVehicleNotFound    = "автомобиль не найден"
	msgInvalidQuotation   = "некорректные данные котировки"
)

type Handler struct {
	useCase CreateQuotationUseCase
	logger  Logger
}

func NewHandler(useCase CreateQuotationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /quotations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateQuotationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /quotations - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /quotations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	q, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createQuotation.ErrPackageNotFound):
			h.logger.Warn("POST /quotations - Package not found: item_id=%d", ptr.Value(req.ItemID))
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createQuotation.ErrVehicleNotFound):
			h.logger.Warn("POST /quotations - Vehicle not found: item_id=%d", ptr.Value(req.ItemID))
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, createQuotation.ErrInvalidInput):
			h.logger.Warn("POST /quotations - Invalid quotation: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidQuotation))

		default:
			h.logger.Error("POST /quotations - Failed to create quotation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotations - Quotation created: id=%d, number=%s, user_id=%d",
		q.ID, q.QuotationNumber, userID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainQuotation(q, time.Now()))
}
