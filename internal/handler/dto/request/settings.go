package request

import (
	"time"

	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/domain/slot"

	"github.com/samber/lo"
)

type OpeningHours struct {
	Open   string `json:"open" binding:"required_unless=Closed true,omitempty,hhmm"`
	Close  string `json:"close" binding:"required_unless=Closed true,omitempty,hhmm"`
	Closed bool   `json:"closed"`
}

type UpdateSettingsRequest struct {
	TimeZone               string  `json:"timezone" binding:"required"`
	NocturneThresholdHour  *int    `json:"nocturneThresholdHour" binding:"required,min=0,max=23"`
	NocturnePerPersonCents *int64  `json:"nocturnePerPersonCents" binding:"required,min=0"`
	MinPlayers             int64   `json:"minPlayers" binding:"required,min=1"`
	PenaltyPerMissingCents *int64  `json:"penaltyPerMissingCents" binding:"required,min=0"`
	DepositType            string  `json:"depositType" binding:"required,oneof=none fixed percent"`
	DepositValue           float64 `json:"depositValue" binding:"min=0"`
	StripeEnabled          bool    `json:"stripeEnabled"`
	SlotStepMin            int     `json:"slotStepMin" binding:"required,min=5,max=240"`
	// Hours is keyed by lower-case English weekday name; missing days are closed.
	Hours map[string]OpeningHours `json:"hours" binding:"required,dive,keys,oneof=sunday monday tuesday wednesday thursday friday saturday,endkeys"`
}

func (r UpdateSettingsRequest) ToParams() settings.Params {
	hours := make(map[time.Weekday]slot.OpeningWindow, len(r.Hours))
	for name, h := range r.Hours {
		day, ok := settings.ParseWeekday(name)
		if !ok {
			continue
		}
		hours[day] = slot.OpeningWindow{Open: h.Open, Close: h.Close, Closed: h.Closed}
	}
	return settings.Params{
		TimeZone:               r.TimeZone,
		NocturneThresholdHour:  lo.FromPtr(r.NocturneThresholdHour),
		NocturnePerPersonCents: lo.FromPtr(r.NocturnePerPersonCents),
		MinPlayers:             r.MinPlayers,
		PenaltyPerMissingCents: lo.FromPtr(r.PenaltyPerMissingCents),
		DepositType:            r.DepositType,
		DepositValue:           r.DepositValue,
		StripeEnabled:          r.StripeEnabled,
		SlotStepMin:            r.SlotStepMin,
		Hours:                  hours,
	}
}
