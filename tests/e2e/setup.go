//go:build e2e

package e2e

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"frv-web/cmd/bootstrap"
	"frv-web/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Environment for one test process: fake Reservation API + the real fx app
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*FakeReservationAPI, *httptest.Server, config.Config) {
	gin.SetMode(gin.TestMode)

	api := NewFakeReservationAPI(t)
	setTestEnv(t, api.BaseURL())

	router, cfg, app := buildE2EApp(t)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	// served over a real listener so cookies travel through an actual client jar
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return api, server, cfg
}

// setTestEnv points the configuration at the fake API; nothing is read from a .env file.
func setTestEnv(t *testing.T, apiBaseURL string) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("PORT", "8889")
	t.Setenv("RESERVATION_API_BASE_URL", apiBaseURL)
	t.Setenv("RESERVATION_API_TIMEOUT", "2s")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("COOKIE_SECURE", "false")
}

// ------------------------------------------------------------
// Builds the application from the production module graph
// ------------------------------------------------------------
func buildE2EApp(t *testing.T) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	app := fx.New(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)
	require.NoError(t, app.Err(), "fx graph failed to build")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app failed to start")

	return router, cfg, app
}

// ------------------------------------------------------------
// Shared setup for the e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	API    *FakeReservationAPI
	Server *httptest.Server
	Config config.Config
	Client *http.Client
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	api, server, cfg := setupE2EEnvironment(t)
	s.API = api
	s.Server = server
	s.Config = cfg
	require.NotEmpty(t, s.Config.API.BaseURL, "config was not populated")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// every test starts from the seeded bookings and a browser without cookies
func (s *SharedSuite) SetupTest() {
	s.reset()
}

func (s *SharedSuite) SetupSubTest() {
	s.reset()
}

func (s *SharedSuite) reset() {
	s.API.Reset()
	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.Client = &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func (s *SharedSuite) Get(path string) (int, string) {
	resp, err := s.Client.Get(s.Server.URL + path)
	s.Require().NoError(err)
	return s.read(resp)
}

func (s *SharedSuite) PostForm(path string, form url.Values) (int, string) {
	resp, err := s.Client.Post(s.Server.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	return s.read(resp)
}

// SessionCookie is the admin token cookie the browser currently holds, or nil.
func (s *SharedSuite) SessionCookie() *http.Cookie {
	u, err := url.Parse(s.Server.URL)
	s.Require().NoError(err)
	for _, c := range s.Client.Jar.Cookies(u) {
		if c.Name == s.Config.Session.TokenKey && c.Value != "" {
			return c
		}
	}
	return nil
}

func (s *SharedSuite) read(resp *http.Response) (int, string) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, string(body)
}
