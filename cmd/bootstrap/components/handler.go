package components

import (
	"resource-backend/internal/handler"
	"resource-backend/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewRateRefHandler,
	),
	fx.Invoke(handler.NewRouter),
)
