package queries

import (
	"context"

	"paintball-booking/internal/domain/settings"
)

// SettingsProvider yields the current venue settings, falling back to
// defaults when none were saved yet.
type SettingsProvider interface {
	Current(ctx context.Context) (*settings.VenueSettings, error)
}

type SettingsQueries interface {
	Get(ctx context.Context) (*settings.VenueSettings, error)
}

type settingsQueriesImpl struct {
	provider SettingsProvider
}

func NewSettingsQueries(provider SettingsProvider) SettingsQueries {
	return &settingsQueriesImpl{provider: provider}
}

func (q *settingsQueriesImpl) Get(ctx context.Context) (*settings.VenueSettings, error) {
	return q.provider.Current(ctx)
}
