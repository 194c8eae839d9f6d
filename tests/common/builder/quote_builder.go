//go:build unit || e2e

package builder

import (
	"time"

	"paintball-booking/internal/domain/pricing"
)

type QuoteInputBuilder struct {
	PricePerPlayerCents float64
	DurationMin         float64
	GroupSize           float64
	Start               time.Time
	Addons              []pricing.AddonLine
	Rules               pricing.Rules
}

func NewQuoteInputBuilder() *QuoteInputBuilder {
	return &QuoteInputBuilder{
		PricePerPlayerCents: 2000,
		DurationMin:         120,
		GroupSize:           10,
		Start:               time.Date(2026, time.June, 12, 14, 0, 0, 0, time.UTC),
		Addons: []pricing.AddonLine{
			{PriceCents: 500, Qty: 2},
			{PriceCents: 1200, Qty: 1},
		},
		Rules: pricing.DefaultRules(),
	}
}

func (b *QuoteInputBuilder) With(mutate func(*QuoteInputBuilder)) *QuoteInputBuilder {
	mutate(b)
	return b
}

func (b *QuoteInputBuilder) WithStartHour(hour int) *QuoteInputBuilder {
	y, m, d := b.Start.Date()
	b.Start = time.Date(y, m, d, hour, 0, 0, 0, b.Start.Location())
	return b
}

func (b *QuoteInputBuilder) WithGroupSize(n float64) *QuoteInputBuilder {
	b.GroupSize = n
	return b
}

func (b *QuoteInputBuilder) WithDeposit(cfg pricing.DepositConfig) *QuoteInputBuilder {
	b.Rules.Deposit = cfg
	return b
}

func (b *QuoteInputBuilder) BuildInput() pricing.QuoteInput {
	return pricing.QuoteInput{
		PricePerPlayerCents: b.PricePerPlayerCents,
		DurationMin:         b.DurationMin,
		GroupSize:           b.GroupSize,
		Start:               b.Start,
		Addons:              b.Addons,
	}
}

func (b *QuoteInputBuilder) BuildQuote() (pricing.Quote, error) {
	return pricing.BuildQuote(b.BuildInput(), b.Rules)
}
