package commands

import (
	"github.com/spf13/cobra"
)

const defaultTimeZone = "Europe/Paris"

type rootOptions struct {
	venueFile string
	timeZone  string
}

func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Output goes to cmd.OutOrStdout().
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "paintballctl",
		Short:         "Offline pricing and scheduling tools for the paintball venue",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&opts.venueFile, "venue", "", "TOML venue file (default: built-in venue settings)")
	root.PersistentFlags().StringVar(&opts.timeZone, "tz", defaultTimeZone, "venue timezone when no venue file is given")

	root.AddCommand(quoteCmd(opts), slotsCmd(opts), hashPasswordCmd())
	return root
}
