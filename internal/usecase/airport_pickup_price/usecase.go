package airport_pickup_price

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// UseCase расчёт трансфера из аэропорта по тарифу трансферов
// Тариф аренды автомобилей здесь не используется
type UseCase struct {
	catalogRepo    CatalogRepository
	defaultDeposit float64
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogRepo CatalogRepository, defaultDeposit float64, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo:    catalogRepo,
		defaultDeposit: defaultDeposit,
		logger:         logger,
	}
}

// Execute выполняет расчёт
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AirportPickupPrice: vehicle=%d, trip=%s, passengers=%d", req.VehicleID, req.TripType, req.Passengers)

	// 1. Валидация входных данных
	if req.VehicleID <= 0 {
		return nil, fmt.Errorf("%w: vehicleId must be positive", ErrInvalidInput)
	}

	// 2. Получаем автомобиль
	vehicle, err := uc.catalogRepo.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVehicleNotFound) {
			uc.logger.Warn("AirportPickupPrice: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("AirportPickupPrice: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Проверяем вместимость
	if !vehicle.HasSeatsFor(req.Passengers) {
		uc.logger.Warn("AirportPickupPrice: vehicle id=%d has %d seats, requested %d",
			vehicle.ID, vehicle.Seats, req.Passengers)
		return nil, ErrTooManyPassengers
	}

	// 4. Расчёт по тарифу трансферов
	deposit := uc.defaultDeposit
	if req.DepositPercentage != nil {
		deposit = *req.DepositPercentage
	}
	currency := req.Currency
	if currency == "" {
		currency = vehicle.Currency
	}

	breakdown, err := pricing.ComputeTransferPrice(pricing.TransferRequest{
		VehicleBasePrice:  vehicle.PricePerDay,
		TripType:          req.TripType,
		Passengers:        req.Passengers,
		Currency:          currency,
		DepositPercentage: deposit,
	})
	if err != nil {
		uc.logger.Warn("AirportPickupPrice: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return &Response{
		VehicleID:       vehicle.ID,
		VehicleName:     vehicle.Name,
		TripType:        req.TripType,
		Passengers:      req.Passengers,
		Days:            breakdown.Days,
		Subtotal:        breakdown.Subtotal,
		DepositAmount:   breakdown.DepositAmount,
		RemainingAmount: breakdown.RemainingAmount,
		Currency:        breakdown.Currency,
	}, nil
}
