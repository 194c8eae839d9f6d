// Package settings holds the venue-wide configuration the back-office edits:
// pricing rules, deposit policy, timezone and the weekly opening hours.
package settings

import (
	"time"

	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/pkg/errs"
)

const (
	MinSlotStepMin = 5
	MaxSlotStepMin = 240
)

type Params struct {
	TimeZone               string
	NocturneThresholdHour  int
	NocturnePerPersonCents int64
	MinPlayers             int64
	PenaltyPerMissingCents int64
	DepositType            string
	DepositValue           float64
	StripeEnabled          bool
	SlotStepMin            int
	// Weekdays missing from Hours are closed.
	Hours map[time.Weekday]slot.OpeningWindow
}

type VenueSettings struct {
	location      *time.Location
	rules         pricing.Rules
	stripeEnabled bool
	slotStepMin   int
	hours         [7]slot.OpeningWindow
}

func NewVenueSettings(p Params) (*VenueSettings, error) {
	loc, err := time.LoadLocation(p.TimeZone)
	if err != nil || p.TimeZone == "" {
		return nil, errs.Validationf("timezone", "unknown timezone %q", p.TimeZone)
	}

	deposit, err := pricing.ParseDepositConfig(p.DepositType, p.DepositValue, p.StripeEnabled)
	if err != nil {
		return nil, err
	}
	rules := pricing.Rules{
		NocturneThresholdHour:  p.NocturneThresholdHour,
		NocturnePerPersonCents: p.NocturnePerPersonCents,
		MinPlayers:             p.MinPlayers,
		PenaltyPerMissingCents: p.PenaltyPerMissingCents,
		Deposit:                deposit,
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	if p.SlotStepMin < MinSlotStepMin || p.SlotStepMin > MaxSlotStepMin {
		return nil, errs.Validationf("slotStepMin", "must be between %d and %d", MinSlotStepMin, MaxSlotStepMin)
	}

	var hours [7]slot.OpeningWindow
	for day := time.Sunday; day <= time.Saturday; day++ {
		w, ok := p.Hours[day]
		if !ok {
			w = slot.OpeningWindow{Closed: true}
		}
		if err := w.Validate(); err != nil {
			return nil, errs.Wrap(err, day.String())
		}
		hours[day] = w
	}

	return &VenueSettings{
		location:      loc,
		rules:         rules,
		stripeEnabled: p.StripeEnabled,
		slotStepMin:   p.SlotStepMin,
		hours:         hours,
	}, nil
}

// Defaults is the venue as configured out of the box: 09:00-22:00 every day.
func Defaults(timeZone string) (*VenueSettings, error) {
	hours := make(map[time.Weekday]slot.OpeningWindow, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		hours[day] = slot.OpeningWindow{Open: slot.DefaultOpen, Close: slot.DefaultClose}
	}
	r := pricing.DefaultRules()
	return NewVenueSettings(Params{
		TimeZone:               timeZone,
		NocturneThresholdHour:  r.NocturneThresholdHour,
		NocturnePerPersonCents: r.NocturnePerPersonCents,
		MinPlayers:             r.MinPlayers,
		PenaltyPerMissingCents: r.PenaltyPerMissingCents,
		DepositType:            string(pricing.DepositNone),
		SlotStepMin:            slot.DefaultStepMin,
		Hours:                  hours,
	})
}

// WindowOn returns the opening window of day's weekday in the venue location.
func (s *VenueSettings) WindowOn(day time.Time) slot.OpeningWindow {
	return s.hours[day.In(s.location).Weekday()]
}

func (s *VenueSettings) Window(day time.Weekday) slot.OpeningWindow { return s.hours[day] }
func (s *VenueSettings) Location() *time.Location                   { return s.location }
func (s *VenueSettings) Rules() pricing.Rules                       { return s.rules }
func (s *VenueSettings) StripeEnabled() bool                        { return s.stripeEnabled }
func (s *VenueSettings) SlotStepMin() int                           { return s.slotStepMin }

// NocturneThreshold is the threshold hour as an HH:MM time of day.
func (s *VenueSettings) NocturneThreshold() string {
	return slot.ThresholdFromHour(s.rules.NocturneThresholdHour)
}

// Params is the persisted form of s.
func (s *VenueSettings) Params() Params {
	hours := make(map[time.Weekday]slot.OpeningWindow, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		hours[day] = s.hours[day]
	}
	return Params{
		TimeZone:               s.location.String(),
		NocturneThresholdHour:  s.rules.NocturneThresholdHour,
		NocturnePerPersonCents: s.rules.NocturnePerPersonCents,
		MinPlayers:             s.rules.MinPlayers,
		PenaltyPerMissingCents: s.rules.PenaltyPerMissingCents,
		DepositType:            string(s.rules.Deposit.Kind()),
		DepositValue:           pricing.DepositValue(s.rules.Deposit),
		StripeEnabled:          s.stripeEnabled,
		SlotStepMin:            s.slotStepMin,
		Hours:                  hours,
	}
}
