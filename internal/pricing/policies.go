package pricing

import "github.com/shopspring/decimal"

// Две независимые политики цены автомобиля.
//
// RentalPricingPolicy используется при расчёте аренды и в котировках,
// TransferPricingPolicy - в админке трансферов из аэропорта. Они дают разные цены
// для одного и того же автомобиля и намеренно не объединены: объединение поменяет
// суммы в одном из потоков. Какая из них правильная, должен решить владелец продукта.

// RentalPricingPolicy цена аренды: цена за день * дни * множитель типа аренды
type RentalPricingPolicy struct {
	Multipliers map[RentalType]decimal.Decimal
}

// DefaultRentalPricingPolicy множители self-drive 1, with-driver 1.5, tour 2
var DefaultRentalPricingPolicy = RentalPricingPolicy{
	Multipliers: map[RentalType]decimal.Decimal{
		RentalSelfDrive:  decimal.NewFromInt(1),
		RentalWithDriver: decimal.NewFromFloat(1.5),
		RentalTour:       decimal.NewFromInt(2),
	},
}

// Subtotal считает стоимость аренды
func (p RentalPricingPolicy) Subtotal(basePerDay float64, days int, rentalType RentalType) (decimal.Decimal, error) {
	if err := validateAmount("basePrice", basePerDay); err != nil {
		return decimal.Zero, err
	}
	return p.subtotal(decimal.NewFromFloat(basePerDay), days, rentalType)
}

func (p RentalPricingPolicy) subtotal(basePerDay decimal.Decimal, days int, rentalType RentalType) (decimal.Decimal, error) {
	if basePerDay.IsNegative() {
		return decimal.Zero, invalid("basePrice", "must not be negative")
	}
	if days < 1 {
		return decimal.Zero, invalid("days", "must be at least 1")
	}
	multiplier, ok := p.Multipliers[rentalType]
	if !ok {
		return decimal.Zero, invalid("rentalType", "unknown rental type")
	}
	return basePerDay.Mul(decimal.NewFromInt(int64(days))).Mul(multiplier), nil
}

// TransferPricingPolicy цена трансфера из аэропорта:
// базовая цена автомобиля (x2 для поездки туда и обратно) + доплата за каждого пассажира сверх включённых
type TransferPricingPolicy struct {
	TwoWayFactor       decimal.Decimal
	IncludedPassengers int
	ExtraPassengerFee  decimal.Decimal
}

// DefaultTransferPricingPolicy: two_way x2, 4 пассажира включены, 10 за каждого следующего
var DefaultTransferPricingPolicy = TransferPricingPolicy{
	TwoWayFactor:       decimal.NewFromInt(2),
	IncludedPassengers: 4,
	ExtraPassengerFee:  decimal.NewFromInt(10),
}

// Subtotal считает стоимость трансфера
func (p TransferPricingPolicy) Subtotal(vehicleBase float64, tripType TripType, passengers int) (decimal.Decimal, error) {
	if err := validateAmount("basePrice", vehicleBase); err != nil {
		return decimal.Zero, err
	}
	return p.subtotal(decimal.NewFromFloat(vehicleBase), tripType, passengers)
}

func (p TransferPricingPolicy) subtotal(vehicleBase decimal.Decimal, tripType TripType, passengers int) (decimal.Decimal, error) {
	if vehicleBase.IsNegative() {
		return decimal.Zero, invalid("basePrice", "must not be negative")
	}
	if passengers < 1 {
		return decimal.Zero, invalid("passengers", "must be at least 1")
	}

	base := vehicleBase
	switch tripType {
	case TripOneWay:
	case TripTwoWay:
		base = base.Mul(p.TwoWayFactor)
	default:
		return decimal.Zero, invalid("tripType", "unknown trip type")
	}

	if extra := passengers - p.IncludedPassengers; extra > 0 {
		base = base.Add(p.ExtraPassengerFee.Mul(decimal.NewFromInt(int64(extra))))
	}
	return base, nil
}

// TransferRequest входные данные для расчёта трансфера из аэропорта
type TransferRequest struct {
	VehicleBasePrice  float64
	TripType          TripType
	Passengers        int
	Currency          string
	DepositPercentage float64
}

// ComputeTransferPrice считает цену трансфера по TransferPricingPolicy и делит её на предоплату и остаток
func ComputeTransferPrice(req TransferRequest) (PriceBreakdown, error) {
	if err := validateDepositPercentage(req.DepositPercentage); err != nil {
		return PriceBreakdown{}, err
	}

	sub, err := DefaultTransferPricingPolicy.Subtotal(req.VehicleBasePrice, req.TripType, req.Passengers)
	if err != nil {
		return PriceBreakdown{}, err
	}

	breakdown := split(sub, req.DepositPercentage, req.Currency)
	breakdown.Days = 1
	return breakdown, nil
}
