package components

import (
	"frv-web/internal/handler"
	"frv-web/internal/handler/middleware"
	"frv-web/internal/handler/web"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		web.NewReservationHandler,
		web.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
