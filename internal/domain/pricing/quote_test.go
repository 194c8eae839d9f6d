//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quoteCase struct {
	name   string
	mutate func(*builder.QuoteInputBuilder)
	errIs  error
}

func TestBuildQuote(t *testing.T) {
	t.Run("daytime session above minimum", func(t *testing.T) {
		b := builder.NewQuoteInputBuilder()
		actual, err := b.BuildQuote()
		require.NoError(t, err)

		expected := pricing.Quote{
			TotalCents:   22200,
			DepositCents: 0,
			Nocturne:     false,
			SessionStart: b.Start,
			SessionEnd:   b.Start.Add(2 * time.Hour),
			Breakdown: pricing.Breakdown{
				Base:            20000,
				Addons:          2200,
				NocturneExtra:   0,
				UnderMinPenalty: 0,
			},
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("evening session under minimum with percent deposit", func(t *testing.T) {
		actual, err := builder.NewQuoteInputBuilder().
			WithStartHour(20).
			WithGroupSize(5).
			WithDeposit(pricing.PercentDeposit{Percent: 20, StripeEnabled: true}).
			BuildQuote()
		require.NoError(t, err)

		assert.True(t, actual.Nocturne)
		assert.Equal(t, pricing.Breakdown{Base: 10000, Addons: 2200, NocturneExtra: 2000, UnderMinPenalty: 7500}, actual.Breakdown)
		assert.Equal(t, int64(21700), actual.TotalCents)
		assert.Equal(t, int64(4340), actual.DepositCents)
	})

	t.Run("breakdown always sums to total", func(t *testing.T) {
		for hour := 9; hour <= 22; hour++ {
			for group := 0.0; group <= 12; group++ {
				q, err := builder.NewQuoteInputBuilder().WithStartHour(hour).WithGroupSize(group).BuildQuote()
				require.NoError(t, err)
				assert.Equal(t, q.TotalCents, q.Breakdown.Sum(), "hour=%d group=%v", hour, group)
			}
		}
	})

	t.Run("same input yields identical quote", func(t *testing.T) {
		a, err := builder.NewQuoteInputBuilder().WithStartHour(21).BuildQuote()
		require.NoError(t, err)
		b, err := builder.NewQuoteInputBuilder().WithStartHour(21).BuildQuote()
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("input validation", func(t *testing.T) {
		runQuoteCases(t, []quoteCase{
			{
				name:   "zero duration",
				mutate: func(b *builder.QuoteInputBuilder) { b.DurationMin = 0 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "fractional group",
				mutate: func(b *builder.QuoteInputBuilder) { b.GroupSize = 3.5 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "missing start",
				mutate: func(b *builder.QuoteInputBuilder) { b.Start = time.Time{} },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "invalid rules",
				mutate: func(b *builder.QuoteInputBuilder) { b.Rules.MinPlayers = 0 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "fractional addon quantity",
				mutate: func(b *builder.QuoteInputBuilder) { b.Addons[0].Qty = 0.5 },
				errIs:  errs.ErrValidation,
			},
			{
				name:   "large group",
				mutate: func(b *builder.QuoteInputBuilder) { b.GroupSize = 40 },
			},
		})
	})

	t.Run("overflowing base is a validation error, not a wrapped total", func(t *testing.T) {
		_, err := builder.NewQuoteInputBuilder().With(func(b *builder.QuoteInputBuilder) {
			b.PricePerPlayerCents = 9e15
			b.GroupSize = 2000
		}).BuildQuote()

		ve, ok := errs.AsValidation(err)
		require.True(t, ok, "got %v", err)
		assert.Equal(t, "base", ve.Field)
		assert.Equal(t, "is too large", ve.Reason)
	})
}

func runQuoteCases(t *testing.T, cases []quoteCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewQuoteInputBuilder().With(tc.mutate).BuildQuote()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
