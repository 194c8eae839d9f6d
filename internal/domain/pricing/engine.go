// Package pricing computes booking prices in integer cents.
//
// Every function is pure: it validates its inputs eagerly, never clamps
// an out-of-range value and returns either a complete result or a
// *errs.ValidationError naming the offending field. Fractional amounts
// are rounded to the nearest cent before they are multiplied.
package pricing

import (
	"fmt"
	"time"

	"paintball-booking/internal/pkg/errs"
)

const (
	DefaultNocturneThresholdHour  = 20
	DefaultNocturnePerPersonCents = 400
	DefaultMinPlayers             = 8
	DefaultPenaltyPerMissingCents = 2500
)

// ComputeBase returns round(pricePerPlayerCents) * groupSize.
func ComputeBase(pricePerPlayerCents, groupSize float64) (int64, error) {
	price, err := cents("pricePerPlayerCents", pricePerPlayerCents)
	if err != nil {
		return 0, err
	}
	group, err := nonNegativeInt("groupSize", groupSize)
	if err != nil {
		return 0, err
	}
	return product("base", price, group)
}

// ComputeNocturneExtra charges perPersonCents per player when start falls at
// or after thresholdHour. The hour is read in start's own location.
func ComputeNocturneExtra(start time.Time, groupSize float64, thresholdHour int, perPersonCents float64) (int64, error) {
	if start.IsZero() {
		return 0, errs.Validation("start", "must be a valid instant")
	}
	group, err := nonNegativeInt("groupSize", groupSize)
	if err != nil {
		return 0, err
	}
	if err := validThresholdHour(thresholdHour); err != nil {
		return 0, err
	}
	perPerson, err := cents("perPersonCents", perPersonCents)
	if err != nil {
		return 0, err
	}

	if !atOrAfterHour(start, thresholdHour) {
		return 0, nil
	}
	return product("nocturneExtra", perPerson, group)
}

// ComputeUnderMinimumPenalty charges for every player missing below minPlayers.
func ComputeUnderMinimumPenalty(groupSize, minPlayers, penaltyPerMissingCents float64) (int64, error) {
	group, err := nonNegativeInt("groupSize", groupSize)
	if err != nil {
		return 0, err
	}
	minimum, err := nonNegativeInt("minPlayers", minPlayers)
	if err != nil {
		return 0, err
	}
	penalty, err := nonNegativeInt("penaltyPerMissingCents", penaltyPerMissingCents)
	if err != nil {
		return 0, err
	}

	if group >= minimum {
		return 0, nil
	}
	return product("underMinPenalty", penalty, minimum-group)
}

type AddonLine struct {
	PriceCents float64
	Qty        float64
}

// ComputeAddons sums round(price) * qty over every line. An empty list costs nothing.
func ComputeAddons(lines []AddonLine) (int64, error) {
	var total int64
	for i, line := range lines {
		price, err := cents(fmt.Sprintf("addons[%d].priceCents", i), line.PriceCents)
		if err != nil {
			return 0, err
		}
		qty, err := nonNegativeInt(fmt.Sprintf("addons[%d].qty", i), line.Qty)
		if err != nil {
			return 0, err
		}
		line, err := product(fmt.Sprintf("addons[%d]", i), price, qty)
		if err != nil {
			return 0, err
		}
		if total, err = sum("addons", total, line); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// Components are the summands of a total. Omitted fields count as zero.
type Components struct {
	Base            float64
	Addons          float64
	NocturneExtra   float64
	UnderMinPenalty float64
}

func ComputeTotal(c Components) (int64, error) {
	parts := []struct {
		field string
		value float64
	}{
		{"base", c.Base},
		{"addons", c.Addons},
		{"nocturneExtra", c.NocturneExtra},
		{"underMinPenalty", c.UnderMinPenalty},
	}

	var total int64
	for _, p := range parts {
		v, err := cents(p.field, p.value)
		if err != nil {
			return 0, err
		}
		if total, err = sum("total", total, v); err != nil {
			return 0, err
		}
	}
	return total, nil
}

func validThresholdHour(h int) error {
	if h < 0 || h > 23 {
		return errs.Validation("thresholdHour", "must be between 0 and 23")
	}
	return nil
}

func atOrAfterHour(t time.Time, hour int) bool {
	return t.Hour() >= hour
}
