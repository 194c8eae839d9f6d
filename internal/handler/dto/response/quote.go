package response

import (
	"time"

	"paintball-booking/internal/domain/pricing"
	"paintball-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type QuotedAddonResponse struct {
	AddonID    uuid.UUID `json:"addonId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	Qty        int       `json:"qty"`
}

type QuoteResponse struct {
	TotalCents   int64                 `json:"totalCents"`
	DepositCents int64                 `json:"depositCents"`
	Nocturne     bool                  `json:"nocturne"`
	StartISO     string                `json:"startISO"`
	EndISO       string                `json:"endISO"`
	Breakdown    pricing.Breakdown     `json:"breakdown"`
	Addons       []QuotedAddonResponse `json:"addons"`
}

// FromQuoteView renders instants with the venue offset they were priced in.
func FromQuoteView(v *queries.QuoteView) QuoteResponse {
	return QuoteResponse{
		TotalCents:   v.TotalCents,
		DepositCents: v.DepositCents,
		Nocturne:     v.Nocturne,
		StartISO:     v.SessionStart.Format(time.RFC3339),
		EndISO:       v.SessionEnd.Format(time.RFC3339),
		Breakdown:    v.Breakdown,
		Addons: lo.Map(v.Addons, func(a queries.QuotedAddon, _ int) QuotedAddonResponse {
			return QuotedAddonResponse{AddonID: a.AddonID, Name: a.Name, PriceCents: a.PriceCents, Qty: a.Qty}
		}),
	}
}

type SlotResponse struct {
	StartISO string `json:"startISO"`
	EndISO   string `json:"endISO"`
	Nocturne bool   `json:"nocturne"`
}

type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(date string, views []queries.SlotView) SlotsResponse {
	return SlotsResponse{
		Date: date,
		Slots: lo.Map(views, func(s queries.SlotView, _ int) SlotResponse {
			return SlotResponse{
				StartISO: s.Start.Format(time.RFC3339),
				EndISO:   s.End.Format(time.RFC3339),
				Nocturne: s.Nocturne,
			}
		}),
	}
}
