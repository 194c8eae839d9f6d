// Package money holds the cent rounding shared by every price computation.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds to the nearest whole cent, half away from zero.
// Values are parsed from their shortest decimal form so 2.675 rounds as written.
func RoundCents(v float64) int64 {
	return decimal.NewFromFloat(v).Round(0).IntPart()
}

// Percent returns round(total * percent / 100) without binary float drift.
func Percent(totalCents, percent float64) int64 {
	return decimal.NewFromFloat(totalCents).
		Mul(decimal.NewFromFloat(percent)).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func IsWhole(v float64) bool {
	return IsFinite(v) && v == math.Trunc(v)
}
