package components

import (
	"resource-backend/internal/kernel"
	"resource-backend/internal/kernel/kernelpg"
	"resource-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		func(cfg config.Config) config.KernelConfig {
			return cfg.Kernel
		},
		fx.Annotate(
			kernelpg.New,
			fx.As(new(kernel.Gateway)),
		),
	),
)
