package repository

import (
	"context"
	"time"

	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
)

const venueSettingsID = 1

type SettingsRepository struct {
	db db.DBTX
}

func NewSettingsRepository(db db.DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Save upserts the settings row and all seven opening_hours rows.
func (r *SettingsRepository) Save(ctx context.Context, p settings.Params) error {
	sqlStr, args, err := db.Psql.Insert("venue_settings").
		Columns(
			"id", "timezone", "nocturne_threshold_hour", "nocturne_per_person_cents", "min_players",
			"penalty_per_missing_cents", "deposit_type", "deposit_value", "stripe_enabled", "slot_step_min", "updated_at",
		).
		Values(
			venueSettingsID, p.TimeZone, p.NocturneThresholdHour, p.NocturnePerPersonCents, p.MinPlayers,
			p.PenaltyPerMissingCents, p.DepositType, p.DepositValue, p.StripeEnabled, p.SlotStepMin, sq.Expr("now()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			timezone = EXCLUDED.timezone,
			nocturne_threshold_hour = EXCLUDED.nocturne_threshold_hour,
			nocturne_per_person_cents = EXCLUDED.nocturne_per_person_cents,
			min_players = EXCLUDED.min_players,
			penalty_per_missing_cents = EXCLUDED.penalty_per_missing_cents,
			deposit_type = EXCLUDED.deposit_type,
			deposit_value = EXCLUDED.deposit_value,
			stripe_enabled = EXCLUDED.stripe_enabled,
			slot_step_min = EXCLUDED.slot_step_min,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build settings upsert", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return infra.WrapRepoErr("failed to save venue settings", err)
	}

	hours := db.Psql.Insert("opening_hours").Columns("weekday", "open_time", "close_time", "closed")
	for day := time.Sunday; day <= time.Saturday; day++ {
		w, ok := p.Hours[day]
		if !ok || w.Closed {
			hours = hours.Values(int(day), "", "", true)
			continue
		}
		hours = hours.Values(int(day), w.Open, w.Close, false)
	}
	sqlStr, args, err = hours.Suffix(`ON CONFLICT (weekday) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			closed = EXCLUDED.closed`).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build opening hours upsert", err, infra.KindDBFailure)
	}
	if _, err := r.db.Exec(ctx, sqlStr, args...); err != nil {
		return infra.WrapRepoErr("failed to save opening hours", err)
	}
	return nil
}
