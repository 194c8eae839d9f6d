package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"paintball-booking/internal/infra/db"
	"paintball-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// tables the booking flow cannot run without
var requiredTables = []string{"bookings", "idempotency_keys", "notification_jobs", "venue_settings"}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := checkSchema(ctx, pool); err != nil {
				return err
			}
			logger.Info("database ready", "host", cfg.DB.Host, "db", cfg.DB.DBName, "max_conns", cfg.DB.MaxConns)
			return nil
		},
		OnStop: func(context.Context) error {
			cleanup()
			return nil
		},
	})
	return pool, nil
}

func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, table := range requiredTables {
		var found bool
		if err := pool.QueryRow(ctx, "SELECT to_regclass($1) IS NOT NULL", "public."+table).Scan(&found); err != nil {
			return fmt.Errorf("check table %s: %w", table, err)
		}
		if !found {
			return fmt.Errorf("table %s missing, run migrations/001_initial_schema.sql", table)
		}
	}
	return nil
}
