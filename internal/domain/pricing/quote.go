package pricing

import (
	"time"

	"paintball-booking/internal/pkg/errs"
)

type QuoteInput struct {
	PricePerPlayerCents float64
	DurationMin         float64
	GroupSize           float64
	// Start must already be expressed in the venue's location.
	Start  time.Time
	Addons []AddonLine
}

type Breakdown struct {
	Base            int64 `json:"base"`
	Addons          int64 `json:"addons"`
	NocturneExtra   int64 `json:"nocturneExtra"`
	UnderMinPenalty int64 `json:"underMinPenalty"`
}

func (b Breakdown) Sum() int64 {
	return b.Base + b.Addons + b.NocturneExtra + b.UnderMinPenalty
}

// Quote is immutable; the same input and rules always produce an identical value.
type Quote struct {
	TotalCents   int64
	DepositCents int64
	Nocturne     bool
	SessionStart time.Time
	SessionEnd   time.Time
	Breakdown    Breakdown
}

func BuildQuote(in QuoteInput, rules Rules) (Quote, error) {
	if err := rules.Validate(); err != nil {
		return Quote{}, err
	}
	duration, err := nonNegativeInt("durationMin", in.DurationMin)
	if err != nil {
		return Quote{}, err
	}
	if duration == 0 {
		return Quote{}, errs.Validation("durationMin", "must be positive")
	}

	base, err := ComputeBase(in.PricePerPlayerCents, in.GroupSize)
	if err != nil {
		return Quote{}, err
	}
	addons, err := ComputeAddons(in.Addons)
	if err != nil {
		return Quote{}, err
	}
	nocturneExtra, err := ComputeNocturneExtra(in.Start, in.GroupSize, rules.NocturneThresholdHour, float64(rules.NocturnePerPersonCents))
	if err != nil {
		return Quote{}, err
	}
	penalty, err := ComputeUnderMinimumPenalty(in.GroupSize, float64(rules.MinPlayers), float64(rules.PenaltyPerMissingCents))
	if err != nil {
		return Quote{}, err
	}

	breakdown := Breakdown{
		Base:            base,
		Addons:          addons,
		NocturneExtra:   nocturneExtra,
		UnderMinPenalty: penalty,
	}
	total, err := ComputeTotal(Components{
		Base:            float64(base),
		Addons:          float64(addons),
		NocturneExtra:   float64(nocturneExtra),
		UnderMinPenalty: float64(penalty),
	})
	if err != nil {
		return Quote{}, err
	}
	deposit, err := ComputeDeposit(float64(total), rules.Deposit)
	if err != nil {
		return Quote{}, err
	}

	return Quote{
		TotalCents:   total,
		DepositCents: deposit,
		Nocturne:     atOrAfterHour(in.Start, rules.NocturneThresholdHour),
		SessionStart: in.Start,
		SessionEnd:   in.Start.Add(time.Duration(duration) * time.Minute),
		Breakdown:    breakdown,
	}, nil
}
