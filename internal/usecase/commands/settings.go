package commands

import (
	"context"

	"paintball-booking/internal/domain/settings"
	reqdto "paintball-booking/internal/handler/dto/request"
	"paintball-booking/internal/pkg/errs"
	"paintball-booking/internal/usecase/shared"
)

// SettingsInvalidator drops cached settings after a write.
type SettingsInvalidator interface {
	Invalidate()
}

type SettingsCommands interface {
	Update(ctx context.Context, req reqdto.UpdateSettingsRequest) (*settings.VenueSettings, error)
}

type settingsCommandsImpl struct {
	uow   shared.UnitOfWork
	cache SettingsInvalidator
}

func NewSettingsCommands(uow shared.UnitOfWork, cache SettingsInvalidator) SettingsCommands {
	return &settingsCommandsImpl{
		uow:   uow,
		cache: cache,
	}
}

func (c *settingsCommandsImpl) Update(ctx context.Context, req reqdto.UpdateSettingsRequest) (*settings.VenueSettings, error) {
	venue, err := settings.NewVenueSettings(req.ToParams())
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Settings().Save(ctx, venue.Params()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate()
	return venue, nil
}
