package bootstrap

import (
	"stay-booking/cmd/bootstrap/components"
	"stay-booking/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.WithLogger(FxEventLogger),
	fx.Provide(clock.NewRealClock),
	DBModule,
	JWTModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
