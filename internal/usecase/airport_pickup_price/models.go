package airport_pickup_price

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// Request модель запроса на расчёт трансфера из аэропорта
type Request struct {
	VehicleID         int64
	TripType          pricing.TripType
	Passengers        int
	Currency          string   // если пусто - валюта автомобиля
	DepositPercentage *float64 // если не указан - процент по умолчанию
}

// Response модель ответа с разбивкой стоимости
type Response struct {
	VehicleID       int64
	VehicleName     string
	TripType        pricing.TripType
	Passengers      int
	Days            int
	Subtotal        decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Currency        string
}
