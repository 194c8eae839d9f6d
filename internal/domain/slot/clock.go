package slot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"paintball-booking/internal/pkg/errs"
)

const (
	DefaultOpen              = "09:00"
	DefaultClose             = "22:00"
	DefaultStepMin           = 30
	DefaultNocturneThreshold = "20:00"

	DayLayout = "2006-01-02"
)

var clockPattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// Clock is a wall-clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClock accepts HH:MM with hour 00-23 and minute 00-59.
func ParseClock(field, s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, errs.Validation(field, "must match HH:MM")
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 {
		return Clock{}, errs.Validation(field, "hour must be between 00 and 23")
	}
	if mm > 59 {
		return Clock{}, errs.Validation(field, "minute must be between 00 and 59")
	}
	return Clock{Hour: h, Minute: mm}, nil
}

// ParseDay reads YYYY-MM-DD as midnight in loc.
func ParseDay(field, s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		return time.Time{}, errs.Validation("timezone", "is required")
	}
	d, err := time.ParseInLocation(DayLayout, s, loc)
	if err != nil {
		return time.Time{}, errs.Validation(field, "must be a calendar date (YYYY-MM-DD)")
	}
	return d, nil
}
