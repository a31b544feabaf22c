package pricing

import "github.com/shopspring/decimal"

// ChildPriceFactor дети платят 70% взрослой цены тура, младенцы - бесплатно
var ChildPriceFactor = decimal.NewFromFloat(0.7)

// ComputePrice считает стоимость услуги и делит её на предоплату и остаток
// Функция чистая: одинаковый запрос всегда даёт одинаковый результат
func ComputePrice(req BookingRequest) (PriceBreakdown, error) {
	if err := validateCommon(req); err != nil {
		return PriceBreakdown{}, err
	}

	duration, err := ComputeDuration(req.StartDate, req.EndDate, req.ServiceType)
	if err != nil {
		return PriceBreakdown{}, err
	}

	base := decimal.NewFromFloat(req.BasePrice)

	var subtotal decimal.Decimal
	switch req.ServiceType {
	case ServiceTour:
		subtotal, err = tourSubtotal(base, req)
	case ServiceVehicle:
		subtotal, err = vehicleSubtotal(base, duration.Days, req)
	case ServiceHotel:
		subtotal, err = hotelSubtotal(base, req)
	case ServiceAirportTransfer, ServiceAllIslandTransfer:
		subtotal = base
	}
	if err != nil {
		return PriceBreakdown{}, err
	}

	breakdown := split(subtotal, req.DepositPercentage, req.Currency)
	breakdown.Days = duration.Days
	return breakdown, nil
}

// ResolveRentalType возвращает тип аренды, учитывая флаг WithDriver
func ResolveRentalType(rentalType RentalType, withDriver bool) RentalType {
	if rentalType != "" {
		return rentalType
	}
	if withDriver {
		return RentalWithDriver
	}
	return RentalSelfDrive
}

func validateCommon(req BookingRequest) error {
	if !req.ServiceType.IsValid() {
		return invalid("serviceType", "unknown service type")
	}
	if err := validateAmount("basePrice", req.BasePrice); err != nil {
		return err
	}
	if req.NumChildren < 0 {
		return invalid("numChildren", "must not be negative")
	}
	if req.NumInfants < 0 {
		return invalid("numInfants", "must not be negative")
	}
	return validateDepositPercentage(req.DepositPercentage)
}

func requireAdults(n int) error {
	if n < 1 {
		return invalid("numAdults", "must be at least 1")
	}
	return nil
}

// base * adults + base * 0.7 * children
func tourSubtotal(base decimal.Decimal, req BookingRequest) (decimal.Decimal, error) {
	if err := requireAdults(req.NumAdults); err != nil {
		return decimal.Zero, err
	}
	adults := base.Mul(decimal.NewFromInt(int64(req.NumAdults)))
	children := base.Mul(ChildPriceFactor).Mul(decimal.NewFromInt(int64(req.NumChildren)))
	return adults.Add(children), nil
}

func vehicleSubtotal(base decimal.Decimal, days int, req BookingRequest) (decimal.Decimal, error) {
	rentalType := ResolveRentalType(req.RentalType, req.WithDriver)
	if rentalType == RentalWithDriver || rentalType == RentalTour {
		if err := requireAdults(req.NumAdults); err != nil {
			return decimal.Zero, err
		}
	}
	return DefaultRentalPricingPolicy.subtotal(base, days, rentalType)
}

// Гостиница считается как есть: цена за номер * количество номеров
func hotelSubtotal(base decimal.Decimal, req BookingRequest) (decimal.Decimal, error) {
	if req.NumRooms < 1 {
		return decimal.Zero, invalid("numRooms", "must be at least 1")
	}
	return base.Mul(decimal.NewFromInt(int64(req.NumRooms))), nil
}
