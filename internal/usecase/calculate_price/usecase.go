package calculate_price

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// UseCase расчёт стоимости для публичной формы бронирования
type UseCase struct {
	defaultDeposit  float64
	defaultCurrency string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(defaultDeposit float64, defaultCurrency string, logger Logger) *UseCase {
	return &UseCase{
		defaultDeposit:  defaultDeposit,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}

// Execute считает длительность и стоимость; ничего не сохраняет
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Подставляем значения по умолчанию
	deposit := uc.defaultDeposit
	if req.DepositPercentage != nil {
		deposit = *req.DepositPercentage
	}
	currency := req.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	// 2. Расчёт
	breakdown, err := pricing.ComputePrice(pricing.BookingRequest{
		ServiceType:       req.ServiceType,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		NumAdults:         req.NumAdults,
		NumChildren:       req.NumChildren,
		NumInfants:        req.NumInfants,
		BasePrice:         req.BasePrice,
		Currency:          currency,
		DepositPercentage: deposit,
		WithDriver:        req.WithDriver,
		RentalType:        req.RentalType,
		NumRooms:          req.NumRooms,
	})
	if err != nil {
		uc.logger.Warn("CalculatePrice: service=%s: %v", req.ServiceType, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return &Response{
		Days:            breakdown.Days,
		Subtotal:        breakdown.Subtotal,
		DepositAmount:   breakdown.DepositAmount,
		RemainingAmount: breakdown.RemainingAmount,
		Currency:        breakdown.Currency,
	}, nil
}
