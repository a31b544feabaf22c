package create_quotation

import (
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/pricing"
)

// Settings значения по умолчанию из конфигурации
type Settings struct {
	DefaultDepositPercentage float64
	ValidityDays             int
	DefaultCurrency          string
}

// Request модель запроса на создание котировки
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	ServiceType        pricing.ServiceType
	ItemID             *int64                    // ID пакета тура или автомобиля
	ItemName           string                    // название гостиницы (для остальных берётся из каталога)
	AccommodationLevel domain.AccommodationLevel // только для тура
	RentalType         pricing.RentalType
	WithDriver         bool

	StartDate   time.Time
	EndDate     time.Time
	NumAdults   int
	NumChildren int
	NumInfants  int
	NumRooms    int

	BasePrice         *float64 // ручное переопределение базовой цены
	Currency          string
	DepositPercentage *float64
	ValidityDays      int // 0 - срок по умолчанию
	Notes             *string

	CreatedBy int64 // ID пользователя из сессии
}
