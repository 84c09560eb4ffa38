package bootstrap

import (
	"frv-web/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	components.ClientModule,
	components.HandlerModule,
)
