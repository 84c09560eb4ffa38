//go:build unit

package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frv-web/internal/infra/session"
	"frv-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/admin", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestCookieStore(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.Cookie.Secure = true
	cfg.Cookie.SameSite = "Strict"

	t.Run("reads the request cookie", func(t *testing.T) {
		c, _ := newContext(&http.Cookie{Name: cfg.Session.TokenKey, Value: "tok"})

		assert.Equal(t, "tok", session.NewCookieStore(c, cfg).Get())
	})

	t.Run("empty without cookie", func(t *testing.T) {
		c, _ := newContext()

		assert.Empty(t, session.NewCookieStore(c, cfg).Get())
	})

	t.Run("set writes an http only cookie and is visible at once", func(t *testing.T) {
		c, w := newContext()
		store := session.NewCookieStore(c, cfg)

		store.Set("new-token")

		assert.Equal(t, "new-token", store.Get())
		cookie := findCookie(w, cfg.Session.TokenKey)
		require.NotNil(t, cookie)
		assert.Equal(t, "new-token", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
		assert.Equal(t, int(time.Hour.Seconds()), cookie.MaxAge)
	})

	t.Run("set empty expires the cookie", func(t *testing.T) {
		c, w := newContext(&http.Cookie{Name: cfg.Session.TokenKey, Value: "tok"})
		store := session.NewCookieStore(c, cfg)

		store.Set("")

		assert.Empty(t, store.Get())
		cookie := findCookie(w, cfg.Session.TokenKey)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})
}

func TestMemoryStore(t *testing.T) {
	store := session.NewMemoryStore("")
	assert.Empty(t, store.Get())

	store.Set("tok")
	assert.Equal(t, "tok", store.Get())

	store.Set("")
	assert.Empty(t, store.Get())
}
