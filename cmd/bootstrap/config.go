package bootstrap

import (
	"frv-web/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(func(cfg config.Config) error {
		return cfg.Validate()
	}),
)
