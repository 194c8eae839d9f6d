// Package slot enumerates bookable session start times inside a day's
// opening window and classifies start times as nocturne.
//
// Times are wall-clock times on an explicit calendar day in an explicit
// location; nothing here reads the process clock.
package slot

import (
	"math"
	"time"

	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/money"
)

// MinStepMin bounds the number of candidates to one per minute of the window.
const MinStepMin = 1

type Options struct {
	Open        string
	Close       string
	StepMin     float64
	DurationMin float64
}

func DefaultOptions(durationMin float64) Options {
	return Options{
		Open:        DefaultOpen,
		Close:       DefaultClose,
		StepMin:     DefaultStepMin,
		DurationMin: durationMin,
	}
}

// OpeningWindow is one day's opening hours.
type OpeningWindow struct {
	Open   string
	Close  string
	Closed bool
}

func (w OpeningWindow) Validate() error {
	if w.Closed {
		return nil
	}
	if _, err := ParseClock("open", w.Open); err != nil {
		return err
	}
	_, err := ParseClock("close", w.Close)
	return err
}

// GenerateSlots returns, in ascending order, every start from opts.Open
// stepping by opts.StepMin while start < close, keeping only starts whose
// session ends at or before close. Starts fall on day's calendar date in
// day.Location(). An empty window (open >= close) yields no slots.
func GenerateSlots(day time.Time, opts Options) ([]time.Time, error) {
	if day.IsZero() {
		return nil, errs.Validation("day", "is required")
	}
	if err := positive("durationMin", opts.DurationMin); err != nil {
		return nil, err
	}
	if err := positive("stepMin", opts.StepMin); err != nil {
		return nil, err
	}
	if opts.StepMin < MinStepMin {
		return nil, errs.Validationf("stepMin", "must be at least %d minute", MinStepMin)
	}
	open, err := ParseClock("open", opts.Open)
	if err != nil {
		return nil, err
	}
	closing, err := ParseClock("close", opts.Close)
	if err != nil {
		return nil, err
	}

	slots := []time.Time{}
	openMin, closeMin := float64(open.Minutes()), float64(closing.Minutes())
	if openMin >= closeMin {
		return slots, nil
	}

	for k := 0; ; k++ {
		start := openMin + float64(k)*opts.StepMin
		if start >= closeMin {
			break
		}
		if start+opts.DurationMin <= closeMin {
			slots = append(slots, onDay(day, start))
		}
	}
	return slots, nil
}

// GenerateForWindow is GenerateSlots bound to a stored opening window.
func GenerateForWindow(day time.Time, w OpeningWindow, stepMin, durationMin float64) ([]time.Time, error) {
	if w.Closed {
		return []time.Time{}, nil
	}
	return GenerateSlots(day, Options{
		Open:        w.Open,
		Close:       w.Close,
		StepMin:     stepMin,
		DurationMin: durationMin,
	})
}

// FitsWindow reports whether a session starting at start fits entirely
// inside w on start's own calendar day.
func FitsWindow(w OpeningWindow, start time.Time, durationMin float64) (bool, error) {
	if w.Closed {
		return false, nil
	}
	if start.IsZero() {
		return false, errs.Validation("start", "must be a valid instant")
	}
	if err := positive("durationMin", durationMin); err != nil {
		return false, err
	}
	open, err := ParseClock("open", w.Open)
	if err != nil {
		return false, err
	}
	closing, err := ParseClock("close", w.Close)
	if err != nil {
		return false, err
	}

	begin := float64(ClockOf(start).Minutes()) + float64(start.Second())/60
	return begin >= float64(open.Minutes()) && begin+durationMin <= float64(closing.Minutes()), nil
}

func positive(field string, v float64) error {
	if !money.IsFinite(v) {
		return errs.Validation(field, "must be a finite number")
	}
	if v <= 0 {
		return errs.Validation(field, "must be positive")
	}
	return nil
}

// onDay builds the wall-clock time minutes after midnight on day's date.
// time.Date normalizes the overflowing nanosecond field.
func onDay(day time.Time, minutes float64) time.Time {
	y, m, d := day.Date()
	nsec := int(math.Round(minutes * float64(time.Minute)))
	return time.Date(y, m, d, 0, 0, 0, nsec, day.Location())
}
