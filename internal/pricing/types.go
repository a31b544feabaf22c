package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceType вид услуги, для которой считается цена
type ServiceType string

const (
	ServiceTour              ServiceType = "tour"
	ServiceVehicle           ServiceType = "vehicle"
	ServiceHotel             ServiceType = "hotel"
	ServiceAirportTransfer   ServiceType = "airport-transfer"
	ServiceAllIslandTransfer ServiceType = "all-island-transfer"
)

// IsValid проверяет, что тип услуги известен
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTour, ServiceVehicle, ServiceHotel, ServiceAirportTransfer, ServiceAllIslandTransfer:
		return true
	}
	return false
}

// IsTransfer returns true for single-day transfer services
func (s ServiceType) IsTransfer() bool {
	return s == ServiceAirportTransfer || s == ServiceAllIslandTransfer
}

// RentalType тип аренды автомобиля
type RentalType string

const (
	RentalSelfDrive  RentalType = "self-drive"
	RentalWithDriver RentalType = "with-driver"
	RentalTour       RentalType = "tour"
)

// TripType направление трансфера из аэропорта
type TripType string

const (
	TripOneWay TripType = "one_way"
	TripTwoWay TripType = "two_way"
)

// BookingRequest входные данные калькулятора
type BookingRequest struct {
	ServiceType       ServiceType
	StartDate         time.Time
	EndDate           time.Time
	NumAdults         int
	NumChildren       int
	NumInfants        int
	BasePrice         float64 // для тура уже включает доплату за размещение
	Currency          string
	DepositPercentage float64
	WithDriver        bool
	RentalType        RentalType // если пусто - определяется по WithDriver
	NumRooms          int
}

// DurationResult длительность услуги в днях (включительно)
type DurationResult struct {
	Days int
}

// PriceBreakdown результат расчета цены
// Суммы остаются в decimal, поэтому DepositAmount + RemainingAmount == Subtotal точно
type PriceBreakdown struct {
	Days            int
	Subtotal        decimal.Decimal
	DepositAmount   decimal.Decimal
	RemainingAmount decimal.Decimal
	Currency        string
}

// DateRange состояние полей формы: дата начала, дата окончания и длительность
// Нулевая дата означает, что поле ещё не заполнено, Days == 0 - длительность не выбрана
type DateRange struct {
	ServiceType ServiceType
	StartDate   time.Time
	EndDate     time.Time
	Days        int
}
