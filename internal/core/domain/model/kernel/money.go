package kernel

import (
	"github.com/shopspring/decimal"

	"freight/internal/pkg/errs"
)

// MoneyPlaces is the number of fractional digits kept for every monetary amount.
const MoneyPlaces = 2

// RoundMoney rounds to cents, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// RequirePositive checks that d is strictly greater than zero.
func RequirePositive(paramName string, d decimal.Decimal) error {
	if !d.IsPositive() {
		return errs.NewValueIsOutOfRangeError(paramName, d.String(), "> 0", "unbounded")
	}
	return nil
}
