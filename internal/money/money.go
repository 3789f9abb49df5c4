package money

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidMoney = errors.New("invalid money amount")
)

// hostShareNumerator is the host's cut of collected revenue; the platform
// keeps the remaining 10%.
const hostShareNumerator = 90

// ToCents converts a decimal dollar value (like 19.99) to cents as int64
// safely. Use ONLY at the Stripe boundary; everything upstream keeps
// decimal units.
func ToCents(dollars float64) (int64, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrInvalidMoney
	}
	if dollars < 0 {
		return 0, ErrInvalidMoney
	}
	// Prevent overflow: int64 max ~9e18 => dollars max ~9e16
	if dollars > 9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidMoney)
	}
	cents := int64(math.Round(dollars * 100.0))
	if cents < 0 {
		return 0, ErrInvalidMoney
	}
	return cents, nil
}

// HostShare returns the host's 90% cut of a cent amount, rounded half-up.
func HostShare(totalCents int64) int64 {
	if totalCents <= 0 {
		return 0
	}
	return (totalCents*hostShareNumerator + 50) / 100
}

func CentsToDollarsString(cents int64) string {
	// Lightweight formatting without float: 123.45 style string
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	d := cents / 100
	c := cents % 100
	return fmt.Sprintf("%s%d.%02d", sign, d, c)
}
