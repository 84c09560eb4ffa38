package bootstrap

import (
	"frv-web/internal/pkg/clock"
	"frv-web/internal/pkg/jwt"
	"frv-web/internal/usecase"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		clock.NewRealClock,
		jwt.NewInspector,
		func(inspector *jwt.Inspector) usecase.TokenInspector {
			return inspector
		},
	),
)
