package commands

import (
	"fmt"
	"time"

	"paintball-booking/internal/domain/slot"

	"github.com/spf13/cobra"
)

func slotsCmd(opts *rootOptions) *cobra.Command {
	var (
		date     string
		duration float64
		step     float64
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the start times of a venue-local day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			venue, err := loadVenue(opts)
			if err != nil {
				return err
			}
			day, err := slot.ParseDay("date", date, venue.Location())
			if err != nil {
				return err
			}
			if step == 0 {
				step = float64(venue.SlotStepMin())
			}

			starts, err := slot.GenerateForWindow(day, venue.Window(day.Weekday()), step, duration)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(starts) == 0 {
				fmt.Fprintln(out, "closed")
				return nil
			}
			for _, s := range starts {
				nocturne, err := slot.IsNocturne(s, venue.NocturneThreshold())
				if err != nil {
					return err
				}
				marker := ""
				if nocturne {
					marker = " nocturne"
				}
				fmt.Fprintf(out, "%s%s\n", s.Format(time.RFC3339), marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day as YYYY-MM-DD")
	cmd.Flags().Float64Var(&duration, "duration", 120, "session length in minutes")
	cmd.Flags().Float64Var(&step, "step", 0, "minutes between starts (default: venue slot step)")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}
