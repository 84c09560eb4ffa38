package session

import (
	"frv-web/internal/pkg/config"
	"frv-web/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
)

// CookieStore keeps the admin token in the browser, under one fixed cookie name.
// It is bound to a single request; a token set during the request is visible to later Gets.
type CookieStore struct {
	c       *gin.Context
	cfg     config.CookieConfig
	name    string
	pending *string
}

func NewCookieStore(c *gin.Context, cfg config.Config) *CookieStore {
	return &CookieStore{
		c:    c,
		cfg:  cfg.Cookie,
		name: cfg.Session.TokenKey,
	}
}

func (s *CookieStore) Get() string {
	if s.pending != nil {
		return *s.pending
	}
	return cookie.GetToken(s.c, s.name)
}

// Set stores token; the empty string removes it.
func (s *CookieStore) Set(token string) {
	s.pending = &token
	if token == "" {
		cookie.ClearToken(s.c, s.cfg, s.name)
		return
	}
	cookie.SetToken(s.c, s.cfg, s.name, token)
}
