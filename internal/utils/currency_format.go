package utils

import (
	"github.com/shopspring/decimal"
)

// AmountPrecision is the number of minor-unit digits of the single supported currency.
const AmountPrecision = 2

// FormatAmount renders an amount with the currency precision.
// Example: 900 returns "900.00", 12.3 returns "12.30"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(AmountPrecision)
}

// HasValidPrecision reports whether amount fits in the currency's minor units.
func HasValidPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(AmountPrecision))
}
