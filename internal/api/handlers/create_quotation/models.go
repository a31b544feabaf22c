package create_quotation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/pricing"
	createQuotation "github.com/m04kA/SMC-TourService/internal/usecase/create_quotation"
)

// CreateQuotationRequest HTTP request model
type CreateQuotationRequest struct {
	CustomerName  string  `json:"customerName" validate:"notblank,max=200"`
	CustomerEmail string  `json:"customerEmail" validate:"required,email"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	ServiceType        string `json:"serviceType" validate:"required"`
	ItemID             *int64 `json:"itemId,omitempty" validate:"omitempty,gt=0"`
	ItemName           string `json:"itemName,omitempty"`
	AccommodationLevel string `json:"accommodationLevel,omitempty"`
	RentalType         string `json:"rentalType,omitempty"`
	WithDriver         bool   `json:"withDriver,omitempty"`

	StartDate   string `json:"startDate" validate:"required"` // "2025-10-15"
	EndDate     string `json:"endDate" validate:"required"`
	NumAdults   int    `json:"numAdults"`
	NumChildren int    `json:"numChildren"`
	NumInfants  int    `json:"numInfants"`
	NumRooms    int    `json:"numRooms,omitempty"`

	BasePrice         *float64 `json:"basePrice,omitempty" validate:"omitempty,gte=0"`
	Currency          string   `json:"currency,omitempty" validate:"omitempty,len=3"`
	DepositPercentage *float64 `json:"depositPercentage,omitempty"`
	ValidityDays      int      `json:"validityDays,omitempty"`
	Notes             *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateQuotationRequest) ToUseCaseRequest(createdBy int64) (*createQuotation.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("startDate: %w", err)
	}
	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("endDate: %w", err)
	}

	return &createQuotation.Request{
		CustomerName:       r.CustomerName,
		CustomerEmail:      r.CustomerEmail,
		CustomerPhone:      r.CustomerPhone,
		ServiceType:        pricing.ServiceType(r.ServiceType),
		ItemID:             r.ItemID,
		ItemName:           r.ItemName,
		AccommodationLevel: domain.AccommodationLevel(r.AccommodationLevel),
		RentalType:         pricing.RentalType(r.RentalType),
		WithDriver:         r.WithDriver,
		StartDate:          startDate,
		EndDate:            endDate,
		NumAdults:          r.NumAdults,
		NumChildren:        r.NumChildren,
		NumInfants:         r.NumInfants,
		NumRooms:           r.NumRooms,
		BasePrice:          r.BasePrice,
		Currency:           r.Currency,
		DepositPercentage:  r.DepositPercentage,
		ValidityDays:       r.ValidityDays,
		Notes:              r.Notes,
		CreatedBy:          createdBy,
	}, nil
}
