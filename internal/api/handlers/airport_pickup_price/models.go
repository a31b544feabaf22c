package airport_pickup_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/pricing"
	airportPickup "github.com/m04kA/SMC-TourService/internal/usecase/airport_pickup_price"
)

// AirportPickupRequest HTTP request model
type AirportPickupRequest struct {
	VehicleID         int64    `json:"vehicleId" validate:"required,gt=0"`
	TripType          string   `json:"tripType" validate:"required,oneof=one_way two_way"`
	Passengers        int      `json:"passengers" validate:"gte=1"`
	Currency          string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	DepositPercentage *float64 `json:"depositPercentage,omitempty"`
}

// AirportPickupResponse HTTP response model
type AirportPickupResponse struct {
	VehicleID       int64           `json:"vehicleId"`
	VehicleName     string          `json:"vehicleName"`
	TripType        string          `json:"tripType"`
	Passengers      int             `json:"passengers"`
	Days            int             `json:"days"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	DepositAmount   decimal.Decimal `json:"depositAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	Currency        string          `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AirportPickupRequest) ToUseCaseRequest() *airportPickup.Request {
	return &airportPickup.Request{
		VehicleID:         r.VehicleID,
		TripType:          pricing.TripType(r.TripType),
		Passengers:        r.Passengers,
		Currency:          r.Currency,
		DepositPercentage: r.DepositPercentage,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *airportPickup.Response) *AirportPickupResponse {
	return &AirportPickupResponse{
		VehicleID:       resp.VehicleID,
		VehicleName:     resp.VehicleName,
		TripType:        string(resp.TripType),
		Passengers:      resp.Passengers,
		Days:            resp.Days,
		Subtotal:        resp.Subtotal,
		DepositAmount:   resp.DepositAmount,
		RemainingAmount: resp.RemainingAmount,
		Currency:        resp.Currency,
	}
}
