//go:build unit

package settings_test

import (
	"testing"
	"time"

	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() settings.Params {
	return settings.Params{
		TimeZone:               "Europe/Paris",
		NocturneThresholdHour:  20,
		NocturnePerPersonCents: 400,
		MinPlayers:             8,
		PenaltyPerMissingCents: 2500,
		DepositType:            string(pricing.DepositPercent),
		DepositValue:           30,
		StripeEnabled:          true,
		SlotStepMin:            30,
		Hours: map[time.Weekday]slot.OpeningWindow{
			time.Saturday: {Open: "10:00", Close: "23:00"},
			time.Sunday:   {Open: "10:00", Close: "18:00"},
		},
	}
}

func TestNewVenueSettings(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		s, err := settings.NewVenueSettings(validParams())
		require.NoError(t, err)

		assert.Equal(t, "Europe/Paris", s.Location().String())
		assert.Equal(t, "20:00", s.NocturneThreshold())
		assert.Equal(t, pricing.PercentDeposit{Percent: 30, StripeEnabled: true}, s.Rules().Deposit)
		assert.True(t, s.Window(time.Monday).Closed, "weekdays without hours are closed")
		assert.Equal(t, slot.OpeningWindow{Open: "10:00", Close: "23:00"}, s.Window(time.Saturday))
	})

	cases := []struct {
		name      string
		mutate    func(*settings.Params)
		wantField string
	}{
		{name: "unknown timezone", mutate: func(p *settings.Params) { p.TimeZone = "Mars/Olympus" }, wantField: "timezone"},
		{name: "empty timezone", mutate: func(p *settings.Params) { p.TimeZone = "" }, wantField: "timezone"},
		{name: "threshold out of range", mutate: func(p *settings.Params) { p.NocturneThresholdHour = 24 }, wantField: "nocturneThresholdHour"},
		{name: "zero min players", mutate: func(p *settings.Params) { p.MinPlayers = 0 }, wantField: "minPlayers"},
		{name: "negative penalty", mutate: func(p *settings.Params) { p.PenaltyPerMissingCents = -1 }, wantField: "penaltyPerMissingCents"},
		{name: "percent over 100", mutate: func(p *settings.Params) { p.DepositValue = 150 }, wantField: "deposit.percent"},
		{name: "unknown deposit type", mutate: func(p *settings.Params) { p.DepositType = "voucher" }, wantField: "deposit.type"},
		{name: "step too small", mutate: func(p *settings.Params) { p.SlotStepMin = 1 }, wantField: "slotStepMin"},
		{
			name: "malformed opening hour",
			mutate: func(p *settings.Params) {
				p.Hours[time.Friday] = slot.OpeningWindow{Open: "9h", Close: "22:00"}
			},
			wantField: "open",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)

			s, err := settings.NewVenueSettings(p)
			require.Nil(t, s)
			require.ErrorIs(t, err, errs.ErrValidation)
			ve, ok := errs.AsValidation(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantField, ve.Field)
		})
	}
}

func TestWindowOn(t *testing.T) {
	s, err := settings.NewVenueSettings(validParams())
	require.NoError(t, err)

	// 23:30 UTC on Friday is already Saturday in Paris.
	friLateUTC := time.Date(2026, time.June, 12, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "10:00", s.WindowOn(friLateUTC).Open)
	assert.False(t, s.WindowOn(friLateUTC).Closed)
}

func TestParamsRoundTrip(t *testing.T) {
	s, err := settings.NewVenueSettings(validParams())
	require.NoError(t, err)

	again, err := settings.NewVenueSettings(s.Params())
	require.NoError(t, err)
	assert.Equal(t, s.Params(), again.Params())
}

func TestDefaults(t *testing.T) {
	s, err := settings.Defaults("UTC")
	require.NoError(t, err)

	for day := time.Sunday; day <= time.Saturday; day++ {
		assert.Equal(t, slot.OpeningWindow{Open: slot.DefaultOpen, Close: slot.DefaultClose}, s.Window(day))
	}
	assert.Equal(t, pricing.DefaultRules(), s.Rules())
	assert.Equal(t, slot.DefaultStepMin, s.SlotStepMin())
}
