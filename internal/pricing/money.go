package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// round2 округляет до копеек, половина - вверх (от нуля)
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// SplitDeposit делит сумму на предоплату и остаток
// deposit = round2(subtotal * pct / 100), remaining = subtotal - deposit
func SplitDeposit(subtotal, depositPercentage float64, currency string) (PriceBreakdown, error) {
	if err := validateAmount("subtotal", subtotal); err != nil {
		return PriceBreakdown{}, err
	}
	if err := validateDepositPercentage(depositPercentage); err != nil {
		return PriceBreakdown{}, err
	}
	return split(decimal.NewFromFloat(subtotal), depositPercentage, currency), nil
}

func split(subtotal decimal.Decimal, depositPercentage float64, currency string) PriceBreakdown {
	deposit := round2(subtotal.Mul(decimal.NewFromFloat(depositPercentage)).Div(hundred))

	return PriceBreakdown{
		Subtotal:        subtotal,
		DepositAmount:   deposit,
		RemainingAmount: subtotal.Sub(deposit),
		Currency:        currency,
	}
}

// decimal.NewFromFloat паникует на NaN и Inf, поэтому такие значения отсекаются здесь
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func validateAmount(field string, x float64) error {
	if !isFinite(x) {
		return invalid(field, "must be a finite number")
	}
	if x < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

func validateDepositPercentage(pct float64) error {
	if !isFinite(pct) || pct < 0 || pct > 100 {
		return invalid("depositPercentage", "must be between 0 and 100")
	}
	return nil
}
