package calculate_price

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	ServiceType       pricing.ServiceType
	StartDate         time.Time
	EndDate           time.Time
	NumAdults         int
	NumChildren       int
	NumInfants        int
	BasePrice         float64
	Currency          string
	DepositPercentage *float64 // если не указан - процент по умолчанию
	WithDriver        bool
	RentalType        pricing.RentalType
	NumRooms          int
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	Days            int
	Subtotal        decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Currency        string
}
