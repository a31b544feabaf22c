package calculate_price

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	calculatePrice "github.com/m04kA/SMC-TourService/internal/usecase/calculate_price"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	ServiceType       string   `json:"serviceType" validate:"required"`
	StartDate         string   `json:"startDate" validate:"required"` // "2025-10-15"
	EndDate           string   `json:"endDate" validate:"required"`
	NumAdults         int      `json:"numAdults"`
	NumChildren       int      `json:"numChildren"`
	NumInfants        int      `json:"numInfants"`
	BasePrice         float64  `json:"basePrice"`
	Currency          string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	DepositPercentage *float64 `json:"depositPercentage,omitempty"`
	WithDriver        bool     `json:"withDriver,omitempty"`
	RentalType        string   `json:"rentalType,omitempty"`
	NumRooms          int      `json:"numRooms,omitempty"`
}

// PriceBreakdownResponse HTTP response model
type PriceBreakdownResponse struct {
	Days            int             `json:"days"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Currency        string          `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() (*calculatePrice.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &calculatePrice.Request{
		ServiceType:       pricing.ServiceType(r.ServiceType),
		StartDate:         startDate,
		EndDate:           endDate,
		NumAdults:         r.NumAdults,
		NumChildren:       r.NumChildren,
		NumInfants:        r.NumInfants,
		BasePrice:         r.BasePrice,
		Currency:          r.Currency,
		DepositPercentage: r.DepositPercentage,
		WithDriver:        r.WithDriver,
		RentalType:        pricing.RentalType(r.RentalType),
		NumRooms:          r.NumRooms,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PriceBreakdownResponse {
	return &PriceBreakdownResponse{
		Days:            resp.Days,
		Subtotal:        resp.Subtotal,
		DepositAmount:   resp.DepositAmount,
		RemainingAmount: resp.RemainingAmount,
		Currency:        resp.Currency,
	}
}
