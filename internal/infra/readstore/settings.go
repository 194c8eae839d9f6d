package readstore

import (
	"context"
	"time"

	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/domain/slot"
	"paintball-booking/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// venueSettingsID is the primary key of the single settings row.
const venueSettingsID = 1

type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(db db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

// Load returns the stored settings; KindNotFound when none were saved yet.
func (r *SettingsReadStore) Load(ctx context.Context) (*settings.Params, error) {
	query := db.Psql.Select(
		"timezone", "nocturne_threshold_hour", "nocturne_per_person_cents", "min_players",
		"penalty_per_missing_cents", "deposit_type", "deposit_value", "stripe_enabled", "slot_step_min",
	).
		From("venue_settings").
		Where(sq.Eq{"id": venueSettingsID})

	p, err := one(ctx, r.db, query, "venue settings not found", "failed to load venue settings", func(row pgx.Row) (*settings.Params, error) {
		var p settings.Params
		err := row.Scan(&p.TimeZone, &p.NocturneThresholdHour, &p.NocturnePerPersonCents, &p.MinPlayers,
			&p.PenaltyPerMissingCents, &p.DepositType, &p.DepositValue, &p.StripeEnabled, &p.SlotStepMin)
		return &p, err
	})
	if err != nil {
		return nil, err
	}

	hours, err := r.loadOpeningHours(ctx)
	if err != nil {
		return nil, err
	}
	p.Hours = hours
	return p, nil
}

type openingHoursRow struct {
	weekday time.Weekday
	window  slot.OpeningWindow
}

func (r *SettingsReadStore) loadOpeningHours(ctx context.Context) (map[time.Weekday]slot.OpeningWindow, error) {
	query := db.Psql.Select("weekday", "open_time", "close_time", "closed").
		From("opening_hours").
		OrderBy("weekday")

	rows, err := collect(ctx, r.db, query, "failed to load opening hours", func(row pgx.Row) (openingHoursRow, error) {
		var (
			o       openingHoursRow
			weekday int
		)
		err := row.Scan(&weekday, &o.window.Open, &o.window.Close, &o.window.Closed)
		o.weekday = time.Weekday(weekday)
		return o, err
	})
	if err != nil {
		return nil, err
	}

	hours := make(map[time.Weekday]slot.OpeningWindow, len(rows))
	for _, o := range rows {
		hours[o.weekday] = o.window
	}
	return hours, nil
}
