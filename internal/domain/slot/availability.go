package slot

import (
	"time"

	"paintball-booking/internal/domain/booking"

	"github.com/samber/lo"
)

// FilterAvailable drops every start whose session would overlap a busy interval.
func FilterAvailable(starts []time.Time, duration time.Duration, busy []booking.Interval) []time.Time {
	return lo.Filter(starts, func(start time.Time, _ int) bool {
		candidate := booking.Interval{Start: start, End: start.Add(duration)}
		return !lo.SomeBy(busy, candidate.Overlaps)
	})
}
