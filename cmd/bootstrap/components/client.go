package components

import (
	"context"
	"log/slog"

	"frv-web/internal/infra/reservationapi"
	"frv-web/internal/pkg/config"
	"frv-web/internal/usecase"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewReservationAPIClient,
		func(c *reservationapi.Client) usecase.ReservationAPI { return c },
		func(c *reservationapi.Client) usecase.AdminAPI { return c },
	),
)

func NewReservationAPIClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *reservationapi.Client {
	client := reservationapi.NewClient(cfg.API, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Reservation API client ready",
				slog.String("base_url", cfg.API.BaseURL),
				slog.Duration("timeout", cfg.API.Timeout))
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
