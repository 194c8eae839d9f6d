package booking

import (
	"time"

	"paintball-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Interval is the half-open range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start time.Time, duration time.Duration) (Interval, error) {
	if start.IsZero() {
		return Interval{}, errs.Validation("start", "must be a valid instant")
	}
	if duration <= 0 {
		return Interval{}, errs.Validation("durationMin", "must be positive")
	}
	return Interval{Start: start, End: start.Add(duration)}, nil
}

// Overlaps is the booking conflict test: a.Start < b.End && b.Start < a.End.
// Back-to-back intervals do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

func (a Interval) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// Occupancy is the part of an existing booking that matters for conflicts.
type Occupancy struct {
	ResourceID uuid.UUID
	Status     Status
	Interval   Interval
}

// Conflicts reports whether candidate overlaps any blocking occupancy on resourceID.
func Conflicts(resourceID uuid.UUID, candidate Interval, existing []Occupancy) bool {
	for _, o := range existing {
		if o.ResourceID != resourceID || !o.Status.BlocksResource() {
			continue
		}
		if candidate.Overlaps(o.Interval) {
			return true
		}
	}
	return false
}
