package bootstrap

import (
	"car-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.DomainModule,
	components.UseCaseModule,
	components.HandlerModule,
	FleetModule,
)
