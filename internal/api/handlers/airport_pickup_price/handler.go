package airport_pickup_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	airportPickup "github.com/m04kA/SMC-TourService/internal/usecase/airport_pickup_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgVehicleNotFound    = "автомобиль не найден"
	msgTooManyPassengers  = "в автомобиле недостаточно мест"
	msgInvalidParams      = "некорректные параметры расчёта"
)

type Handler struct {
	useCase AirportPickupUseCase
	logger  Logger
}

func NewHandler(useCase AirportPickupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/airport-pickup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AirportPickupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/airport-pickup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /pricing/airport-pickup - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, airportPickup.ErrVehicleNotFound):
			h.logger.Warn("POST /pricing/airport-pickup - Vehicle not found: vehicle_id=%d", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, airportPickup.ErrTooManyPassengers):
			h.logger.Warn("POST /pricing/airport-pickup - Too many passengers: vehicle_id=%d, passengers=%d",
				req.VehicleID, req.Passengers)
			handlers.RespondBadRequest(w, msgTooManyPassengers)

		case errors.Is(err, airportPickup.ErrInvalidInput):
			h.logger.Warn("POST /pricing/airport-pickup - Invalid params: %v", err)
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err, msgInvalidParams))

		default:
			h.logger.Error("POST /pricing/airport-pickup - Failed to calculate price: vehicle_id=%d, error=%v",
				req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/airport-pickup - Price calculated: vehicle_id=%d, trip=%s, subtotal=%s",
		req.VehicleID, req.TripType, result.Subtotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
