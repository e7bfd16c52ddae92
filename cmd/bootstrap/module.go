package bootstrap

import (
	"resource-backend/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
