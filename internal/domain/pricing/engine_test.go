//go:build unit

package pricing_test

import (
	"math"
	"testing"
	"time"

	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name      string
	run       func() (int64, error)
	want      int64
	wantField string
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			if tc.wantField != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValidation)
				ve, ok := errs.AsValidation(err)
				require.True(t, ok, "expected *errs.ValidationError, got %T", err)
				assert.Equal(t, tc.wantField, ve.Field)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.June, 12, hour, minute, 0, 0, time.UTC)
}

// ================================================================================
// ComputeBase
// ================================================================================

func TestComputeBase(t *testing.T) {
	base := func(price, group float64) func() (int64, error) {
		return func() (int64, error) { return pricing.ComputeBase(price, group) }
	}

	runCases(t, []testCase{
		{name: "integer price", run: base(2500, 10), want: 25000},
		{name: "fractional price rounds before multiplying", run: base(199.6, 3), want: 600},
		{name: "half cent rounds away from zero", run: base(100.5, 2), want: 202},
		{name: "decimal literal rounds as written", run: base(2.675, 1), want: 3},
		{name: "zero group", run: base(2500, 0), want: 0},
		{name: "zero price", run: base(0, 12), want: 0},
		{name: "negative group", run: base(2500, -1), wantField: "groupSize"},
		{name: "fractional group", run: base(2500, 2.5), wantField: "groupSize"},
		{name: "infinite group", run: base(2500, math.Inf(1)), wantField: "groupSize"},
		{name: "negative price", run: base(-1, 3), wantField: "pricePerPlayerCents"},
		{name: "NaN price", run: base(math.NaN(), 3), wantField: "pricePerPlayerCents"},
		{name: "largest exact product", run: base(1<<43, 1<<10), want: 1 << 53},
		{name: "product beyond exact cents", run: base(1e15, 1e5), wantField: "base"},
		{name: "product beyond int64", run: base(9e15, 2000), wantField: "base"},
	})

	t.Run("round-then-multiply differs from multiply-then-round", func(t *testing.T) {
		got, err := pricing.ComputeBase(0.4, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})
}

// ================================================================================
// ComputeNocturneExtra
// ================================================================================

func TestComputeNocturneExtra(t *testing.T) {
	extra := func(start time.Time, group float64, threshold int, perPerson float64) func() (int64, error) {
		return func() (int64, error) { return pricing.ComputeNocturneExtra(start, group, threshold, perPerson) }
	}
	const n = 10
	def := pricing.DefaultNocturneThresholdHour
	per := float64(pricing.DefaultNocturnePerPersonCents)

	runCases(t, []testCase{
		{name: "hour 21 is nocturne", run: extra(at(21, 0), n, def, per), want: 400 * n},
		{name: "hour 19 is not", run: extra(at(19, 59), n, def, per), want: 0},
		{name: "threshold hour itself is nocturne", run: extra(at(20, 0), n, def, per), want: 400 * n},
		{name: "custom threshold and fractional rate", run: extra(at(18, 30), 4, 18, 250.4), want: 1000},
		{name: "zero group", run: extra(at(22, 0), 0, def, per), want: 0},
		{name: "zero start", run: extra(time.Time{}, n, def, per), wantField: "start"},
		{name: "negative group", run: extra(at(21, 0), -3, def, per), wantField: "groupSize"},
		{name: "fractional group", run: extra(at(21, 0), 1.5, def, per), wantField: "groupSize"},
		{name: "threshold below range", run: extra(at(21, 0), n, -1, per), wantField: "thresholdHour"},
		{name: "threshold above range", run: extra(at(21, 0), n, 24, per), wantField: "thresholdHour"},
		{name: "negative rate", run: extra(at(21, 0), n, def, -400), wantField: "perPersonCents"},
		{name: "surcharge too large", run: extra(at(21, 0), 1e6, def, 1e12), wantField: "nocturneExtra"},
	})

	t.Run("hour is read in the instant's location", func(t *testing.T) {
		paris, err := time.LoadLocation("Europe/Paris")
		require.NoError(t, err)
		// 19:30 UTC is 21:30 in Paris during summer time.
		start := time.Date(2026, time.June, 12, 19, 30, 0, 0, time.UTC)

		utc, err := pricing.ComputeNocturneExtra(start, 2, def, per)
		require.NoError(t, err)
		local, err := pricing.ComputeNocturneExtra(start.In(paris), 2, def, per)
		require.NoError(t, err)

		assert.Equal(t, int64(0), utc)
		assert.Equal(t, int64(800), local)
	})
}

// ================================================================================
// ComputeUnderMinimumPenalty
// ================================================================================

func TestComputeUnderMinimumPenalty(t *testing.T) {
	penalty := func(group, minimum, per float64) func() (int64, error) {
		return func() (int64, error) { return pricing.ComputeUnderMinimumPenalty(group, minimum, per) }
	}
	minPlayers := float64(pricing.DefaultMinPlayers)
	per := float64(pricing.DefaultPenaltyPerMissingCents)

	runCases(t, []testCase{
		{name: "at minimum", run: penalty(8, minPlayers, per), want: 0},
		{name: "above minimum", run: penalty(20, minPlayers, per), want: 0},
		{name: "three missing", run: penalty(5, minPlayers, per), want: 7500},
		{name: "custom minimum and rate", run: penalty(2, 5, 1000), want: 3000},
		{name: "empty group", run: penalty(0, minPlayers, per), want: 8 * 2500},
		{name: "negative group", run: penalty(-1, minPlayers, per), wantField: "groupSize"},
		{name: "fractional minimum", run: penalty(5, 7.5, per), wantField: "minPlayers"},
		{name: "negative rate", run: penalty(5, minPlayers, -1), wantField: "penaltyPerMissingCents"},
		{name: "penalty too large", run: penalty(0, 1e6, 1e12), wantField: "underMinPenalty"},
		{name: "fractional rate", run: penalty(5, minPlayers, 10.5), wantField: "penaltyPerMissingCents"},
	})
}

// ================================================================================
// ComputeAddons
// ================================================================================

func TestComputeAddons(t *testing.T) {
	addons := func(lines ...pricing.AddonLine) func() (int64, error) {
		return func() (int64, error) { return pricing.ComputeAddons(lines) }
	}

	runCases(t, []testCase{
		{name: "two lines", run: addons(pricing.AddonLine{PriceCents: 500, Qty: 2}, pricing.AddonLine{PriceCents: 1200, Qty: 1}), want: 2200},
		{name: "empty list", run: addons(), want: 0},
		{name: "zero quantity", run: addons(pricing.AddonLine{PriceCents: 500, Qty: 0}), want: 0},
		{name: "fractional price rounds per line", run: addons(pricing.AddonLine{PriceCents: 99.5, Qty: 3}), want: 300},
		{name: "fractional quantity names the index", run: addons(pricing.AddonLine{PriceCents: 500, Qty: 1}, pricing.AddonLine{PriceCents: 500, Qty: 1.5}), wantField: "addons[1].qty"},
		{name: "negative quantity", run: addons(pricing.AddonLine{PriceCents: 500, Qty: -1}), wantField: "addons[0].qty"},
		{name: "negative price", run: addons(pricing.AddonLine{PriceCents: -500, Qty: 1}), wantField: "addons[0].priceCents"},
		{name: "infinite price", run: addons(pricing.AddonLine{PriceCents: math.Inf(1), Qty: 1}), wantField: "addons[0].priceCents"},
		{name: "line product too large", run: addons(pricing.AddonLine{PriceCents: 500, Qty: 1}, pricing.AddonLine{PriceCents: 1e15, Qty: 1e5}), wantField: "addons[1]"},
		{name: "running sum too large", run: addons(pricing.AddonLine{PriceCents: 1 << 52, Qty: 1}, pricing.AddonLine{PriceCents: 1 << 52, Qty: 1}, pricing.AddonLine{PriceCents: 1, Qty: 1}), wantField: "addons"},
	})
}

// ================================================================================
// ComputeTotal
// ================================================================================

func TestComputeTotal(t *testing.T) {
	total := func(c pricing.Components) func() (int64, error) {
		return func() (int64, error) { return pricing.ComputeTotal(c) }
	}

	runCases(t, []testCase{
		{name: "all components", run: total(pricing.Components{Base: 20000, Addons: 3000, NocturneExtra: 1500, UnderMinPenalty: 2500}), want: 27000},
		{name: "omitted components are zero", run: total(pricing.Components{Base: 20000}), want: 20000},
		{name: "empty", run: total(pricing.Components{}), want: 0},
		{name: "negative base", run: total(pricing.Components{Base: -1}), wantField: "base"},
		{name: "negative addons", run: total(pricing.Components{Base: 1, Addons: -1}), wantField: "addons"},
		{name: "negative nocturne extra", run: total(pricing.Components{NocturneExtra: -5}), wantField: "nocturneExtra"},
		{name: "NaN penalty", run: total(pricing.Components{UnderMinPenalty: math.NaN()}), wantField: "underMinPenalty"},
		{name: "sum beyond exact cents", run: total(pricing.Components{Base: 1 << 53, Addons: 1}), wantField: "total"},
	})
}

// ================================================================================
// ComputeDeposit
// ================================================================================

func TestComputeDeposit(t *testing.T) {
	deposit := func(total float64, cfg pricing.DepositConfig) func() (int64, error) {
		return func() (int64, error) { return pricing.ComputeDeposit(total, cfg) }
	}

	runCases(t, []testCase{
		{name: "none", run: deposit(10000, pricing.NoDeposit{}), want: 0},
		{name: "fixed ignores total", run: deposit(10000, pricing.FixedDeposit{AmountCents: 500}), want: 500},
		{name: "fixed with zero total", run: deposit(0, pricing.FixedDeposit{AmountCents: 500}), want: 500},
		{name: "fixed rounds", run: deposit(10000, pricing.FixedDeposit{AmountCents: 499.5}), want: 500},
		{name: "percent without stripe", run: deposit(10000, pricing.PercentDeposit{Percent: 20, StripeEnabled: false}), want: 0},
		{name: "percent with stripe", run: deposit(10000, pricing.PercentDeposit{Percent: 20, StripeEnabled: true}), want: 2000},
		{name: "percent rounds half up", run: deposit(1005, pricing.PercentDeposit{Percent: 50, StripeEnabled: true}), want: 503},
		{name: "full percent", run: deposit(12345, pricing.PercentDeposit{Percent: 100, StripeEnabled: true}), want: 12345},
		{name: "percent above range", run: deposit(10000, pricing.PercentDeposit{Percent: 101, StripeEnabled: true}), wantField: "deposit.percent"},
		{name: "percent above range even without stripe", run: deposit(10000, pricing.PercentDeposit{Percent: 150}), wantField: "deposit.percent"},
		{name: "negative fixed amount", run: deposit(10000, pricing.FixedDeposit{AmountCents: -1}), wantField: "deposit.amountCents"},
		{name: "negative total", run: deposit(-1, pricing.NoDeposit{}), wantField: "totalCents"},
		{name: "missing config", run: deposit(10000, nil), wantField: "deposit"},
	})
}

func TestParseDepositConfig(t *testing.T) {
	t.Run("round trips every kind", func(t *testing.T) {
		for _, cfg := range []pricing.DepositConfig{
			pricing.NoDeposit{},
			pricing.FixedDeposit{AmountCents: 1500},
			pricing.PercentDeposit{Percent: 30, StripeEnabled: true},
		} {
			parsed, err := pricing.ParseDepositConfig(string(cfg.Kind()), pricing.DepositValue(cfg), true)
			require.NoError(t, err)
			assert.Equal(t, cfg, parsed)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := pricing.ParseDepositConfig("voucher", 10, false)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("stripe flag only affects percent deposits", func(t *testing.T) {
		parsed, err := pricing.ParseDepositConfig("percent", 20, false)
		require.NoError(t, err)
		got, err := pricing.ComputeDeposit(10000, parsed)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got)
	})
}

// ================================================================================
// Idempotence
// ================================================================================

func TestPricingIsDeterministic(t *testing.T) {
	for range 3 {
		a, errA := pricing.ComputeBase(199.6, 7)
		b, errB := pricing.ComputeBase(199.6, 7)
		require.NoError(t, errA)
		require.NoError(t, errB)
		assert.Equal(t, a, b)
	}
}
