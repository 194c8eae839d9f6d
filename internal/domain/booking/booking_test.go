//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"paintball-booking/internal/domain/booking"
	"paintball-booking/internal/domain/resource"
	"paintball-booking/internal/pkg/clock"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, time.June, 12, 0, 0, 0, 0, time.UTC)

func iv(fromH, toH float64) booking.Interval {
	return booking.Interval{
		Start: base.Add(time.Duration(fromH * float64(time.Hour))),
		End:   base.Add(time.Duration(toH * float64(time.Hour))),
	}
}

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func newFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(tc.mutate).BuildDomain(newFactory())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ================================================================================
// Interval
// ================================================================================

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b booking.Interval
		want bool
	}{
		{name: "identical", a: iv(10, 12), b: iv(10, 12), want: true},
		{name: "partial overlap at start", a: iv(10, 12), b: iv(9, 11), want: true},
		{name: "partial overlap at end", a: iv(10, 12), b: iv(11, 13), want: true},
		{name: "contained", a: iv(10, 14), b: iv(11, 12), want: true},
		{name: "back to back after", a: iv(10, 12), b: iv(12, 14), want: false},
		{name: "back to back before", a: iv(10, 12), b: iv(8, 10), want: false},
		{name: "disjoint", a: iv(10, 11), b: iv(15, 16), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestNewInterval(t *testing.T) {
	got, err := booking.NewInterval(base.Add(10*time.Hour), 90*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got.Duration())

	_, err = booking.NewInterval(time.Time{}, time.Hour)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = booking.NewInterval(base, 0)
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestConflicts(t *testing.T) {
	resourceID := uuid.New()
	other := uuid.New()
	candidate := iv(14, 16)

	cases := []struct {
		name     string
		existing []booking.Occupancy
		want     bool
	}{
		{name: "no bookings", existing: nil, want: false},
		{name: "pending overlap", existing: []booking.Occupancy{{ResourceID: resourceID, Status: booking.StatusPending, Interval: iv(15, 17)}}, want: true},
		{name: "confirmed overlap", existing: []booking.Occupancy{{ResourceID: resourceID, Status: booking.StatusConfirmed, Interval: iv(13, 15)}}, want: true},
		{name: "cancelled overlap ignored", existing: []booking.Occupancy{{ResourceID: resourceID, Status: booking.StatusCancelled, Interval: iv(14, 16)}}, want: false},
		{name: "other resource ignored", existing: []booking.Occupancy{{ResourceID: other, Status: booking.StatusConfirmed, Interval: iv(14, 16)}}, want: false},
		{name: "adjacent booking", existing: []booking.Occupancy{{ResourceID: resourceID, Status: booking.StatusConfirmed, Interval: iv(16, 18)}}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, booking.Conflicts(resourceID, candidate, tc.existing))
		})
	}
}

// ================================================================================
// Status
// ================================================================================

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to booking.Status
		allowed  bool
	}{
		{booking.StatusPending, booking.StatusConfirmed, true},
		{booking.StatusPending, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusCancelled, true},
		{booking.StatusConfirmed, booking.StatusPending, false},
		{booking.StatusCancelled, booking.StatusConfirmed, false},
		{booking.StatusCancelled, booking.StatusPending, false},
		{booking.StatusPending, booking.StatusPending, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.from)+"->"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	assert.True(t, booking.StatusPending.BlocksResource())
	assert.True(t, booking.StatusConfirmed.BlocksResource())
	assert.False(t, booking.StatusCancelled.BlocksResource())

	_, err := booking.NewStatus("ARCHIVED")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

// ================================================================================
// Factory
// ================================================================================

func TestCreateBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain(newFactory())
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.Equal(t, b.ResourceID, actual.ResourceID())
		assert.Equal(t, b.Start, actual.Interval().Start)
		assert.Equal(t, 2*time.Hour, actual.Interval().Duration())
		assert.Equal(t, int64(22200), actual.TotalCents())
		assert.Equal(t, actual.TotalCents(), actual.Breakdown().Sum())
		assert.Equal(t, "camille@example.com", actual.Contact().Email())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty group",
				mutate: func(b *builder.BookingBuilder) { b.GroupSize = 0 },
				errIs:  booking.ErrInvalidGroupSize,
			},
			{
				name: "inside lead time",
				mutate: func(b *builder.BookingBuilder) {
					b.WithStart(time.Date(2026, time.June, 1, 9, 30, 0, 0, time.UTC))
				},
				errIs: booking.ErrLeadTimeNotMet,
			},
			{
				name: "exactly at lead time",
				mutate: func(b *builder.BookingBuilder) {
					b.WithStart(time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC))
				},
			},
			{
				name:   "tampered breakdown",
				mutate: func(b *builder.BookingBuilder) { b.Quote.TotalCents++ },
				errIs:  booking.ErrBreakdownMismatch,
			},
		})
	})

	t.Run("inactive resource", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		spec, err := b.BuildSpec()
		require.NoError(t, err)
		inactive, err := resource.NewResource(b.ResourceID, b.ResourceName, b.LeadTimeMin, false)
		require.NoError(t, err)
		spec.Resource = inactive

		_, err = newFactory().CreateBooking(spec)
		assert.ErrorIs(t, err, booking.ErrResourceNotBookable)
	})
}

func TestChangeStatus(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain(newFactory())
	require.NoError(t, err)
	later := b.CreatedAt().Add(time.Hour)

	require.NoError(t, b.ChangeStatus(booking.StatusConfirmed, later))
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	assert.Equal(t, later, b.UpdatedAt())

	assert.ErrorIs(t, b.ChangeStatus(booking.StatusPending, later), booking.ErrInvalidTransition)
	require.NoError(t, b.ChangeStatus(booking.StatusCancelled, later))
	assert.False(t, b.Occupancy().Status.BlocksResource())
}

// ================================================================================
// Contact / Note
// ================================================================================

func TestNewContact(t *testing.T) {
	cases := []struct {
		name      string
		fullName  string
		email     string
		phone     string
		wantField string
	}{
		{name: "valid", fullName: " Alex ", email: "Alex@Example.com ", phone: "0612345678"},
		{name: "empty name", fullName: "  ", email: "a@example.com", wantField: "contact.name"},
		{name: "long name", fullName: strings.Repeat("a", booking.MaxNameLength+1), email: "a@example.com", wantField: "contact.name"},
		{name: "bad email", fullName: "Alex", email: "not-an-email", wantField: "contact.email"},
		{name: "display-name email", fullName: "Alex", email: "Alex <a@example.com>", wantField: "contact.email"},
		{name: "long phone", fullName: "Alex", email: "a@example.com", phone: strings.Repeat("1", booking.MaxPhoneLength+1), wantField: "contact.phone"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := booking.NewContact(tc.fullName, tc.email, tc.phone)
			if tc.wantField != "" {
				ve, ok := errs.AsValidation(err)
				require.True(t, ok)
				assert.Equal(t, tc.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Alex", c.Name())
			assert.Equal(t, "alex@example.com", c.Email())
		})
	}

	_, err := booking.NewNote(strings.Repeat("n", booking.MaxNoteLength+1))
	assert.ErrorIs(t, err, errs.ErrValidation)
}
