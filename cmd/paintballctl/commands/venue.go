package commands

import (
	"fmt"
	"time"

	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/pkg/config"
)

func loadVenue(opts *rootOptions) (*settings.VenueSettings, error) {
	if opts.venueFile == "" {
		return settings.Defaults(opts.timeZone)
	}
	vf, err := config.LoadVenueFile(opts.venueFile)
	if err != nil {
		return nil, err
	}
	params, err := venueParams(vf)
	if err != nil {
		return nil, err
	}
	return settings.NewVenueSettings(params)
}

func venueParams(vf config.VenueFile) (settings.Params, error) {
	hours := make(map[time.Weekday]slot.OpeningWindow, len(vf.Hours))
	for name, h := range vf.Hours {
		day, ok := settings.ParseWeekday(name)
		if !ok {
			return settings.Params{}, fmt.Errorf("unknown weekday %q in venue hours", name)
		}
		hours[day] = slot.OpeningWindow{Open: h.Open, Close: h.Close, Closed: h.Closed}
	}

	step := vf.SlotStepMin
	if step == 0 {
		step = slot.DefaultStepMin
	}
	deposit := vf.Deposit.Type
	if deposit == "" {
		deposit = "none"
	}

	return settings.Params{
		TimeZone:               vf.TimeZone,
		NocturneThresholdHour:  vf.Pricing.NocturneThresholdHour,
		NocturnePerPersonCents: vf.Pricing.NocturnePerPersonCents,
		MinPlayers:             vf.Pricing.MinPlayers,
		PenaltyPerMissingCents: vf.Pricing.PenaltyPerMissingCents,
		DepositType:            deposit,
		DepositValue:           vf.Deposit.Value,
		StripeEnabled:          vf.Deposit.StripeEnabled,
		SlotStepMin:            step,
		Hours:                  hours,
	}, nil
}
