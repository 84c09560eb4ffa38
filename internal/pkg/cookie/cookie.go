package cookie

import (
	"net/http"

	"frv-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

func SetToken(c *gin.Context, cfg config.CookieConfig, name, token string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		name,
		token,
		int(cfg.MaxAge.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearToken(c *gin.Context, cfg config.CookieConfig, name string) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		name,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetToken(c *gin.Context, name string) string {
	token, _ := c.Cookie(name)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
