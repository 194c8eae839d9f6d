package components

import (
	"paintball-booking/internal/infra/uow"

	"go.uber.org/fx"
)

// RepositoryModule provides the write side. Repositories are bound to a
// transaction by the unit of work, so only the unit of work is injected.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)
