package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	resdto "frv-web/internal/handler/dto/response"
	"frv-web/internal/handler/middleware"
	"frv-web/internal/handler/web"
	"frv-web/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservationHandler *web.ReservationHandler, adminHandler *web.AdminHandler, authMiddleware *middleware.AuthMiddleware, logger *slog.Logger) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, cfg, authMiddleware, logger)
	setupRoutes(engine, cfg, reservationHandler, adminHandler)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, authMiddleware *middleware.AuthMiddleware, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	// claims are read before logging so request logs carry them
	engine.Use(authMiddleware.OptionalAuth())
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, reservationHandler *web.ReservationHandler, adminHandler *web.AdminHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: reservationHandler.Index},
		{Method: http.MethodPost, Path: "/reservar", Handler: reservationHandler.Submit},
	})

	// the availability JSON is also fetched by the landing pages hosted elsewhere
	corsMw := []gin.HandlerFunc{middleware.NewCORSMiddleware(cfg.CORS)}
	public := engine.Group("/reservar")
	{
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/disponibilidad", Handler: reservationHandler.Availability, Mw: corsMw},
			{Method: http.MethodOptions, Path: "/disponibilidad", Handler: noContent, Mw: corsMw},
		})
	}

	admin := engine.Group("/admin")
	{
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "", Handler: adminHandler.Show},
			{Method: http.MethodPost, Path: "/login", Handler: adminHandler.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: adminHandler.Logout},
			{Method: http.MethodPost, Path: "/reservas/:id/completar", Handler: adminHandler.Complete},
			{Method: http.MethodPost, Path: "/reservas/:id/eliminar", Handler: adminHandler.Delete},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:  "ok",
		Message: "Service is healthy",
	})
}

func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		case http.MethodOptions:
			g.OPTIONS(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
