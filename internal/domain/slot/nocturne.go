package slot

import (
	"time"

	"paintball-booking/internal/pkg/errs"
)

// IsNocturne reports whether start's time of day is at or after thresholdTime.
// The comparison uses start's own location.
func IsNocturne(start time.Time, thresholdTime string) (bool, error) {
	if start.IsZero() {
		return false, errs.Validation("start", "must be a valid instant")
	}
	threshold, err := ParseClock("thresholdTime", thresholdTime)
	if err != nil {
		return false, err
	}
	return ClockOf(start).Minutes() >= threshold.Minutes(), nil
}

// ThresholdFromHour formats a nocturne hour as the HH:00 threshold IsNocturne expects.
func ThresholdFromHour(hour int) string {
	return Clock{Hour: hour}.String()
}
