package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"frv-web/internal/handler/httperr"
	"frv-web/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const errorPage = `<!DOCTYPE html><html lang="es"><head><meta charset="utf-8"><title>Error</title></head>` +
	`<body><p>Ocurrió un error inesperado. Intente nuevamente más tarde.</p></body></html>`

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors.ByType(gin.ErrorTypePrivate) {
			slog.ErrorContext(c.Request.Context(), "unhandled request error",
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", errs.ExtractStackLines(err.Err, 12))
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				// Public: Meta ⇒ Return as is
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		internalError(c)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				internalError(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

// internalError answers browsers with a page and everything else with the JSON error shape.
func internalError(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Data(http.StatusInternalServerError, "text/html; charset=utf-8", []byte(errorPage))
		return
	}

	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	c.JSON(http.StatusInternalServerError, resp)
}
