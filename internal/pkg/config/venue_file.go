package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// VenueFile is the offline venue description read by paintballctl.
type VenueFile struct {
	TimeZone    string                `toml:"timezone"`
	SlotStepMin int                   `toml:"slot_step_min"`
	Pricing     VenuePricing          `toml:"pricing"`
	Deposit     VenueDeposit          `toml:"deposit"`
	Hours       map[string]VenueHours `toml:"hours"`
}

type VenuePricing struct {
	NocturneThresholdHour  int   `toml:"nocturne_threshold_hour"`
	NocturnePerPersonCents int64 `toml:"nocturne_per_person_cents"`
	MinPlayers             int64 `toml:"min_players"`
	PenaltyPerMissingCents int64 `toml:"penalty_per_missing_cents"`
}

type VenueDeposit struct {
	Type          string  `toml:"type"`
	Value         float64 `toml:"value"`
	StripeEnabled bool    `toml:"stripe_enabled"`
}

// VenueHours is keyed by lower-case English weekday name in VenueFile.Hours.
type VenueHours struct {
	Open   string `toml:"open"`
	Close  string `toml:"close"`
	Closed bool   `toml:"closed"`
}

func LoadVenueFile(path string) (VenueFile, error) {
	var vf VenueFile
	meta, err := toml.DecodeFile(path, &vf)
	if err != nil {
		return VenueFile{}, fmt.Errorf("failed to decode venue file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return VenueFile{}, fmt.Errorf("unknown keys in venue file %s: %v", path, undecoded)
	}
	return vf, nil
}
