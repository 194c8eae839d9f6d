package pricing

import (
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/pkg/money"
)

type DepositKind string

const (
	DepositNone    DepositKind = "none"
	DepositFixed   DepositKind = "fixed"
	DepositPercent DepositKind = "percent"
)

// DepositConfig is one of NoDeposit, FixedDeposit or PercentDeposit.
type DepositConfig interface {
	Kind() DepositKind
	isDepositConfig()
}

type NoDeposit struct{}

type FixedDeposit struct {
	AmountCents float64
}

// PercentDeposit only applies when online payment is enabled.
type PercentDeposit struct {
	Percent       float64
	StripeEnabled bool
}

func (NoDeposit) Kind() DepositKind      { return DepositNone }
func (FixedDeposit) Kind() DepositKind   { return DepositFixed }
func (PercentDeposit) Kind() DepositKind { return DepositPercent }

func (NoDeposit) isDepositConfig()      {}
func (FixedDeposit) isDepositConfig()   {}
func (PercentDeposit) isDepositConfig() {}

// ParseDepositConfig rebuilds the variant from its stored (kind, value) form.
func ParseDepositConfig(kind string, value float64, stripeEnabled bool) (DepositConfig, error) {
	var cfg DepositConfig
	switch DepositKind(kind) {
	case DepositNone, "":
		return NoDeposit{}, nil
	case DepositFixed:
		cfg = FixedDeposit{AmountCents: value}
	case DepositPercent:
		cfg = PercentDeposit{Percent: value, StripeEnabled: stripeEnabled}
	default:
		return nil, errs.Validationf("deposit.type", "unknown deposit type %q", kind)
	}
	if err := validateDeposit(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DepositValue is the stored numeric part of cfg.
func DepositValue(cfg DepositConfig) float64 {
	switch c := cfg.(type) {
	case FixedDeposit:
		return c.AmountCents
	case PercentDeposit:
		return c.Percent
	default:
		return 0
	}
}

func ComputeDeposit(totalCents float64, cfg DepositConfig) (int64, error) {
	if err := nonNegative("totalCents", totalCents); err != nil {
		return 0, err
	}
	if err := validateDeposit(cfg); err != nil {
		return 0, err
	}

	switch c := cfg.(type) {
	case NoDeposit:
		return 0, nil
	case FixedDeposit:
		return money.RoundCents(c.AmountCents), nil
	case PercentDeposit:
		if !c.StripeEnabled {
			return 0, nil
		}
		return money.Percent(totalCents, c.Percent), nil
	}
	return 0, nil
}

func validateDeposit(cfg DepositConfig) error {
	switch c := cfg.(type) {
	case nil:
		return errs.Validation("deposit", "is required")
	case NoDeposit:
		return nil
	case FixedDeposit:
		return nonNegative("deposit.amountCents", c.AmountCents)
	case PercentDeposit:
		if err := nonNegative("deposit.percent", c.Percent); err != nil {
			return err
		}
		if c.Percent > 100 {
			return errs.Validation("deposit.percent", "must be between 0 and 100")
		}
		return nil
	default:
		return errs.Validation("deposit", "unsupported deposit configuration")
	}
}
