package bootstrap

import (
	"paintball-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	ValidatorModule,
	components.PersistenceModule,
	components.RepositoryModule,
	CacheModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
