package bootstrap

import (
	"context"

	"paintball-booking/internal/infra/cache"
	"paintball-booking/internal/infra/readstore"
	"paintball-booking/internal/pkg/config"
	"paintball-booking/internal/usecase/commands"
	"paintball-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSettingsCache,
		func(c *cache.SettingsCache) queries.SettingsProvider { return c },
		func(c *cache.SettingsCache) commands.SettingsInvalidator { return c },
	),
)

func NewSettingsCache(lc fx.Lifecycle, cfg config.Config, store *readstore.SettingsReadStore) *cache.SettingsCache {
	c := cache.NewSettingsCache(store, cfg.Cache, cfg.Venue)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			c.Flush()
			return nil
		},
	})
	return c
}
