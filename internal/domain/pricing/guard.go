package pricing

import (
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/money"
)

// Inputs above 2^53 cannot be represented exactly as JSON numbers.
const maxExactCents = 1 << 53

func nonNegative(field string, v float64) error {
	if !money.IsFinite(v) {
		return errs.Validation(field, "must be a finite number")
	}
	if v < 0 {
		return errs.Validation(field, "cannot be negative")
	}
	if v > maxExactCents {
		return errs.Validation(field, "is too large")
	}
	return nil
}

func nonNegativeInt(field string, v float64) (int64, error) {
	if err := nonNegative(field, v); err != nil {
		return 0, err
	}
	if !money.IsWhole(v) {
		return 0, errs.Validation(field, "must be an integer")
	}
	return int64(v), nil
}

// cents rounds a validated amount before it takes part in any multiplication.
func cents(field string, v float64) (int64, error) {
	if err := nonNegative(field, v); err != nil {
		return 0, err
	}
	return money.RoundCents(v), nil
}

// product multiplies two validated factors, refusing results that would
// leave the exactly representable range.
func product(field string, a, b int64) (int64, error) {
	if a != 0 && b > maxExactCents/a {
		return 0, errs.Validation(field, "is too large")
	}
	return a * b, nil
}

func sum(field string, a, b int64) (int64, error) {
	if b > maxExactCents-a {
		return 0, errs.Validation(field, "is too large")
	}
	return a + b, nil
}
