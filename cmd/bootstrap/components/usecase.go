package components

import (
	"resource-backend/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		usecase.NewResourceUseCase,
		usecase.NewRateRefUseCase,
	),
)
