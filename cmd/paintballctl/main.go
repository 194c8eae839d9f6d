package main

import (
	"os"

	"paintball-booking/cmd/paintballctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
