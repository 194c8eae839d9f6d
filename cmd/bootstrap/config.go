package bootstrap

import (
	"log/slog"

	"paintball-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the non-secret settings the process booted with.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_host", cfg.DB.Host,
		"db_name", cfg.DB.DBName,
		"venue_timezone", cfg.Venue.TimeZone,
		"settings_cache_ttl", cfg.Cache.SettingsTTL.String(),
		"metrics_enabled", cfg.Metrics.Enabled,
	)
}
