package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paintball-booking/internal/domain/pricing"

	"github.com/spf13/cobra"
)

type quoteOutput struct {
	TotalCents   int64             `json:"totalCents"`
	DepositCents int64             `json:"depositCents"`
	Nocturne     bool              `json:"nocturne"`
	StartISO     string            `json:"startISO"`
	EndISO       string            `json:"endISO"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
}

func quoteCmd(opts *rootOptions) *cobra.Command {
	var (
		price    float64
		duration float64
		group    float64
		start    string
		addons   []string
	)

	cmd := &cobra.Command{
		Use:     "quote",
		Short:   "Price a session and print the quote as JSON",
		Example: "  paintballctl quote --price 2000 --group 10 --start 2026-06-12T21:00:00+02:00 --addon 500:2",
		RunE: func(cmd *cobra.Command, _ []string) error {
			venue, err := loadVenue(opts)
			if err != nil {
				return err
			}
			at, err := time.Parse(time.RFC3339, start)
			if err != nil {
				return fmt.Errorf("--start must be RFC 3339 with an offset: %w", err)
			}
			lines, err := parseAddonLines(addons)
			if err != nil {
				return err
			}

			q, err := pricing.BuildQuote(pricing.QuoteInput{
				PricePerPlayerCents: price,
				DurationMin:         duration,
				GroupSize:           group,
				Start:               at.In(venue.Location()),
				Addons:              lines,
			}, venue.Rules())
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(quoteOutput{
				TotalCents:   q.TotalCents,
				DepositCents: q.DepositCents,
				Nocturne:     q.Nocturne,
				StartISO:     q.SessionStart.Format(time.RFC3339),
				EndISO:       q.SessionEnd.Format(time.RFC3339),
				Breakdown:    q.Breakdown,
			})
		},
	}

	cmd.Flags().Float64Var(&price, "price", 0, "price per player in cents")
	cmd.Flags().Float64Var(&duration, "duration", 120, "session length in minutes")
	cmd.Flags().Float64Var(&group, "group", 0, "number of players")
	cmd.Flags().StringVar(&start, "start", "", "session start, RFC 3339")
	cmd.Flags().StringArrayVar(&addons, "addon", nil, "add-on as price:qty, repeatable")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("group")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func parseAddonLines(raw []string) ([]pricing.AddonLine, error) {
	lines := make([]pricing.AddonLine, 0, len(raw))
	for _, s := range raw {
		priceStr, qtyStr, ok := strings.Cut(s, ":")
		if !ok {
			return nil, fmt.Errorf("--addon %q: expected price:qty", s)
		}
		p, err1 := strconv.ParseFloat(priceStr, 64)
		q, err2 := strconv.ParseFloat(qtyStr, 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("--addon %q: price and qty must be numbers", s)
		}
		lines = append(lines, pricing.AddonLine{PriceCents: p, Qty: q})
	}
	return lines, nil
}
