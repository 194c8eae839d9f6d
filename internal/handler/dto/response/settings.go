package response

import (
	"time"

	"paintball-booking/internal/domain/settings"
)

type OpeningHoursResponse struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

type SettingsResponse struct {
	TimeZone               string                          `json:"timezone"`
	NocturneThresholdHour  int                             `json:"nocturneThresholdHour"`
	NocturnePerPersonCents int64                           `json:"nocturnePerPersonCents"`
	MinPlayers             int64                           `json:"minPlayers"`
	PenaltyPerMissingCents int64                           `json:"penaltyPerMissingCents"`
	DepositType            string                          `json:"depositType"`
	DepositValue           float64                         `json:"depositValue"`
	StripeEnabled          bool                            `json:"stripeEnabled"`
	SlotStepMin            int                             `json:"slotStepMin"`
	Hours                  map[string]OpeningHoursResponse `json:"hours"`
}

func FromVenueSettings(s *settings.VenueSettings) SettingsResponse {
	p := s.Params()
	hours := make(map[string]OpeningHoursResponse, len(p.Hours))
	for day := time.Sunday; day <= time.Saturday; day++ {
		w := p.Hours[day]
		hours[settings.WeekdayName(day)] = OpeningHoursResponse{Open: w.Open, Close: w.Close, Closed: w.Closed}
	}
	return SettingsResponse{
		TimeZone:               p.TimeZone,
		NocturneThresholdHour:  p.NocturneThresholdHour,
		NocturnePerPersonCents: p.NocturnePerPersonCents,
		MinPlayers:             p.MinPlayers,
		PenaltyPerMissingCents: p.PenaltyPerMissingCents,
		DepositType:            p.DepositType,
		DepositValue:           p.DepositValue,
		StripeEnabled:          p.StripeEnabled,
		SlotStepMin:            p.SlotStepMin,
		Hours:                  hours,
	}
}
