package cache

import (
	"context"
	"log/slog"
	"sync"

	"paintball-booking/internal/domain/settings"
	"paintball-booking/internal/infra"
	"paintball-booking/internal/pkg/config"

	gocache "github.com/patrickmn/go-cache"
)

const currentSettingsKey = "venue_settings"

// SettingsLoader reads the persisted settings row.
type SettingsLoader interface {
	Load(ctx context.Context) (*settings.Params, error)
}

// SettingsCache memoises the venue settings for the configured TTL.
// Each Invalidate bumps generation; a load that started under an older
// generation is returned to its caller but never stored.
type SettingsCache struct {
	store           *gocache.Cache
	loader          SettingsLoader
	defaultTimeZone string

	mu         sync.Mutex
	generation uint64
}

func NewSettingsCache(loader SettingsLoader, cacheCfg config.CacheConfig, venueCfg config.VenueConfig) *SettingsCache {
	return &SettingsCache{
		store:           gocache.New(cacheCfg.SettingsTTL, cacheCfg.CleanupInterval),
		loader:          loader,
		defaultTimeZone: venueCfg.TimeZone,
	}
}

// Current returns the cached settings, loading them on a miss. A venue
// that never saved settings gets the defaults in the configured timezone.
func (c *SettingsCache) Current(ctx context.Context) (*settings.VenueSettings, error) {
	if v, ok := c.store.Get(currentSettingsKey); ok {
		return v.(*settings.VenueSettings), nil
	}

	c.mu.Lock()
	gen := c.generation
	c.mu.Unlock()

	venue, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if gen == c.generation {
		c.store.SetDefault(currentSettingsKey, venue)
	}
	c.mu.Unlock()
	return venue, nil
}

func (c *SettingsCache) load(ctx context.Context) (*settings.VenueSettings, error) {
	params, err := c.loader.Load(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("no venue settings stored, using defaults", "timezone", c.defaultTimeZone)
			return settings.Defaults(c.defaultTimeZone)
		}
		return nil, err
	}
	if params.TimeZone == "" {
		params.TimeZone = c.defaultTimeZone
	}
	return settings.NewVenueSettings(*params)
}

func (c *SettingsCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.store.Delete(currentSettingsKey)
}

func (c *SettingsCache) Flush() {
	c.store.Flush()
}
