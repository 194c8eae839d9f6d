//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword matches testPasswordHash.
const (
	TestPassword     = "password123"
	testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestResource(t *testing.T, db DBLike, name string, leadTimeMin int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO resources (id, name, lead_time_min, is_active) VALUES ($1, $2, $3, true)",
		id, name, leadTimeMin)
	require.NoError(t, err)
	return id
}

func CreateTestPackage(t *testing.T, db DBLike, name string, priceCents int64, durationMin int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO packages (id, name, price_cents, duration_min, is_active) VALUES ($1, $2, $3, $4, true)",
		id, name, priceCents, durationMin)
	require.NoError(t, err)
	return id
}

func CreateTestAddon(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO addons (id, name, price_cents, is_active) VALUES ($1, $2, $3, true)",
		id, name, priceCents)
	require.NoError(t, err)
	return id
}

// SeedReferenceData stores the venue settings every test starts from:
// Europe/Paris, nocturne from 20h at 300/person, 10 players minimum,
// 30% deposit and 09:00-23:00 every day.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO venue_settings (id, timezone, nocturne_threshold_hour, nocturne_per_person_cents, min_players,
		    penalty_per_missing_cents, deposit_type, deposit_value, stripe_enabled, slot_step_min)
		VALUES (1, 'Europe/Paris', 20, 300, 10, 2500, 'percent', 30, true, 30)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO opening_hours (weekday, open_time, close_time, closed)
		SELECT d, '09:00', '23:00', false FROM generate_series(0, 6) AS d
		ON CONFLICT (weekday) DO NOTHING;
	`)
	return err
}

// mutableTables are emptied between subtests. users is included so each
// subtest seeds the accounts it needs.
var mutableTables = []string{
	"notification_jobs",
	"idempotency_keys",
	"booking_addons",
	"bookings",
	"addons",
	"packages",
	"resources",
	"opening_hours",
	"venue_settings",
	"users",
}

// ResetDB truncates every mutable table and reseeds the venue settings.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "TRUNCATE " + strings.Join(mutableTables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("reset database: %w", err)
	}
	return SeedReferenceData(pool)
}
