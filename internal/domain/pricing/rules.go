package pricing

import "paintball-booking/internal/pkg/errs"

// Rules are the venue-wide pricing parameters derived from settings.
type Rules struct {
	NocturneThresholdHour  int
	NocturnePerPersonCents int64
	MinPlayers             int64
	PenaltyPerMissingCents int64
	Deposit                DepositConfig
}

func DefaultRules() Rules {
	return Rules{
		NocturneThresholdHour:  DefaultNocturneThresholdHour,
		NocturnePerPersonCents: DefaultNocturnePerPersonCents,
		MinPlayers:             DefaultMinPlayers,
		PenaltyPerMissingCents: DefaultPenaltyPerMissingCents,
		Deposit:                NoDeposit{},
	}
}

func (r Rules) Validate() error {
	if err := validThresholdHour(r.NocturneThresholdHour); err != nil {
		return errs.Validation("nocturneThresholdHour", "must be between 0 and 23")
	}
	if r.NocturnePerPersonCents < 0 {
		return errs.Validation("nocturnePerPersonCents", "cannot be negative")
	}
	if r.MinPlayers < 1 {
		return errs.Validation("minPlayers", "must be at least 1")
	}
	if r.PenaltyPerMissingCents < 0 {
		return errs.Validation("penaltyPerMissingCents", "cannot be negative")
	}
	return validateDeposit(r.Deposit)
}
