//go:build unit

package slot_test

import (
	"math"
	"testing"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)

func clocks(ts []time.Time) []string {
	return lo.Map(ts, func(t time.Time, _ int) string { return t.Format("15:04") })
}

// ================================================================================
// GenerateSlots
// ================================================================================

func TestGenerateSlots(t *testing.T) {
	cases := []struct {
		name string
		opts slot.Options
		want []string
	}{
		{
			name: "hourly slots ending exactly at close",
			opts: slot.Options{Open: "09:00", Close: "12:00", StepMin: 60, DurationMin: 60},
			want: []string{"09:00", "10:00", "11:00"},
		},
		{
			name: "quarter-hour step with 45 minute sessions",
			opts: slot.Options{Open: "10:00", Close: "11:30", StepMin: 15, DurationMin: 45},
			want: []string{"10:00", "10:15", "10:30", "10:45"},
		},
		{
			name: "session longer than window",
			opts: slot.Options{Open: "10:00", Close: "11:00", StepMin: 30, DurationMin: 90},
			want: []string{},
		},
		{
			name: "open equals close",
			opts: slot.Options{Open: "10:00", Close: "10:00", StepMin: 30, DurationMin: 30},
			want: []string{},
		},
		{
			name: "open after close",
			opts: slot.Options{Open: "22:00", Close: "09:00", StepMin: 30, DurationMin: 30},
			want: []string{},
		},
		{
			name: "step not dividing the window",
			opts: slot.Options{Open: "09:00", Close: "10:00", StepMin: 25, DurationMin: 10},
			want: []string{"09:00", "09:25", "09:50"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slot.GenerateSlots(day, tc.opts)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tc.want, clocks(got))
		})
	}

	t.Run("defaults cover 09:00 to 22:00 every 30 minutes", func(t *testing.T) {
		got, err := slot.GenerateSlots(day, slot.DefaultOptions(120))
		require.NoError(t, err)
		require.Len(t, got, 23)
		assert.Equal(t, "09:00", got[0].Format("15:04"))
		assert.Equal(t, "20:00", got[len(got)-1].Format("15:04"))
	})

	t.Run("slots are ascending and on the requested date", func(t *testing.T) {
		got, err := slot.GenerateSlots(day, slot.DefaultOptions(60))
		require.NoError(t, err)
		for i, s := range got {
			assert.Equal(t, day.YearDay(), s.YearDay())
			if i > 0 {
				assert.True(t, got[i-1].Before(s))
			}
		}
	})

	t.Run("slots carry the day's location", func(t *testing.T) {
		paris, err := time.LoadLocation("Europe/Paris")
		require.NoError(t, err)
		local := time.Date(2026, time.March, 29, 0, 0, 0, 0, paris)

		got, err := slot.GenerateSlots(local, slot.Options{Open: "09:00", Close: "11:00", StepMin: 60, DurationMin: 60})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, paris, got[0].Location())
		assert.Equal(t, []string{"09:00", "10:00"}, clocks(got))
	})
}

func TestGenerateSlotsValidation(t *testing.T) {
	cases := []struct {
		name      string
		day       time.Time
		opts      slot.Options
		wantField string
	}{
		{name: "zero duration", day: day, opts: slot.Options{Open: "09:00", Close: "12:00", StepMin: 30}, wantField: "durationMin"},
		{name: "negative step", day: day, opts: slot.Options{Open: "09:00", Close: "12:00", StepMin: -30, DurationMin: 60}, wantField: "stepMin"},
		{name: "NaN step", day: day, opts: slot.Options{Open: "09:00", Close: "12:00", StepMin: math.NaN(), DurationMin: 60}, wantField: "stepMin"},
		{name: "vanishing step", day: day, opts: slot.Options{Open: "09:00", Close: "10:00", StepMin: 1e-300, DurationMin: 30}, wantField: "stepMin"},
		{name: "sub-minute step", day: day, opts: slot.Options{Open: "09:00", Close: "10:00", StepMin: 0.5, DurationMin: 30}, wantField: "stepMin"},
		{name: "malformed open", day: day, opts: slot.Options{Open: "9:00", Close: "12:00", StepMin: 30, DurationMin: 60}, wantField: "open"},
		{name: "hour out of range", day: day, opts: slot.Options{Open: "09:00", Close: "24:00", StepMin: 30, DurationMin: 60}, wantField: "close"},
		{name: "minute out of range", day: day, opts: slot.Options{Open: "09:60", Close: "12:00", StepMin: 30, DurationMin: 60}, wantField: "open"},
		{name: "missing day", day: time.Time{}, opts: slot.DefaultOptions(60), wantField: "day"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slot.GenerateSlots(tc.day, tc.opts)
			require.Error(t, err)
			assert.Nil(t, got)
			ve, ok := errs.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestGenerateSlotsMinuteStep(t *testing.T) {
	got, err := slot.GenerateSlots(day, slot.Options{Open: "09:00", Close: "09:05", StepMin: slot.MinStepMin, DurationMin: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:01", "09:02", "09:03", "09:04"}, clocks(got))
}

func TestGenerateForWindow(t *testing.T) {
	t.Run("closed day has no slots", func(t *testing.T) {
		got, err := slot.GenerateForWindow(day, slot.OpeningWindow{Closed: true}, 30, 60)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("open day delegates to GenerateSlots", func(t *testing.T) {
		got, err := slot.GenerateForWindow(day, slot.OpeningWindow{Open: "09:00", Close: "12:00"}, 60, 60)
		require.NoError(t, err)
		assert.Equal(t, []string{"09:00", "10:00", "11:00"}, clocks(got))
	})
}

func TestFitsWindow(t *testing.T) {
	w := slot.OpeningWindow{Open: "09:00", Close: "22:00"}

	cases := []struct {
		name  string
		start time.Time
		dur   float64
		want  bool
	}{
		{name: "inside", start: day.Add(10 * time.Hour), dur: 120, want: true},
		{name: "ends exactly at close", start: day.Add(20 * time.Hour), dur: 120, want: true},
		{name: "ends after close", start: day.Add(21 * time.Hour), dur: 120, want: false},
		{name: "starts exactly at open", start: day.Add(9 * time.Hour), dur: 60, want: true},
		{name: "starts before open", start: day.Add(8*time.Hour + 30*time.Minute), dur: 60, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slot.FitsWindow(w, tc.start, tc.dur)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("closed window never fits", func(t *testing.T) {
		got, err := slot.FitsWindow(slot.OpeningWindow{Closed: true}, day.Add(10*time.Hour), 60)
		require.NoError(t, err)
		assert.False(t, got)
	})
}

// ================================================================================
// IsNocturne
// ================================================================================

func TestIsNocturne(t *testing.T) {
	cases := []struct {
		name      string
		start     time.Time
		threshold string
		want      bool
	}{
		{name: "after threshold", start: day.Add(20*time.Hour + 30*time.Minute), threshold: "20:00", want: true},
		{name: "before threshold", start: day.Add(18*time.Hour + 45*time.Minute), threshold: "20:00", want: false},
		{name: "exactly at threshold", start: day.Add(20 * time.Hour), threshold: "20:00", want: true},
		{name: "one minute before", start: day.Add(19*time.Hour + 59*time.Minute), threshold: "20:00", want: false},
		{name: "minute threshold", start: day.Add(19*time.Hour + 45*time.Minute), threshold: "19:30", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slot.IsNocturne(tc.start, tc.threshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("malformed threshold", func(t *testing.T) {
		_, err := slot.IsNocturne(day.Add(20*time.Hour), "8pm")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("zero start", func(t *testing.T) {
		_, err := slot.IsNocturne(time.Time{}, slot.DefaultNocturneThreshold)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("threshold from hour", func(t *testing.T) {
		assert.Equal(t, "20:00", slot.ThresholdFromHour(20))
		assert.Equal(t, "07:00", slot.ThresholdFromHour(7))
	})
}

// ================================================================================
// FilterAvailable
// ================================================================================

func TestFilterAvailable(t *testing.T) {
	starts, err := slot.GenerateSlots(day, slot.Options{Open: "09:00", Close: "14:00", StepMin: 60, DurationMin: 60})
	require.NoError(t, err)

	busy := []booking.Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(11*time.Hour + 30*time.Minute)},
	}

	got := slot.FilterAvailable(starts, time.Hour, busy)

	// 09:00-10:00 touches the busy start and stays; 11:00 overlaps the busy tail.
	assert.Equal(t, []string{"09:00", "12:00", "13:00"}, clocks(got))
}
