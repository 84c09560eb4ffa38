package usecase

import (
	"context"
	"log/slog"
	"strings"

	"frv-web/internal/domain/auth"
	"frv-web/internal/domain/reservation"
	"frv-web/internal/pkg/errs"
)

type SessionState int

const (
	LoggedOut SessionState = iota
	LoggedIn
)

func (s SessionState) String() string {
	if s == LoggedIn {
		return "logged_in"
	}
	return "logged_out"
}

type AdminSessionController interface {
	State() SessionState
	Resume(ctx context.Context, dateFilter string)
	Login(ctx context.Context, username, password string)
	LoadAppointments(ctx context.Context, dateFilter string)
	MarkComplete(ctx context.Context, id, dateFilter string)
	DeleteReservation(ctx context.Context, id, dateFilter string)
	Logout(ctx context.Context)
}

type adminSessionControllerImpl struct {
	api       AdminAPI
	store     SessionStore
	inspector TokenInspector
	view      AdminView
	logger    *slog.Logger

	state      SessionState
	dateFilter string
}

func NewAdminSessionController(
	api AdminAPI,
	store SessionStore,
	inspector TokenInspector,
	view AdminView,
	logger *slog.Logger,
) AdminSessionController {
	if logger == nil {
		logger = slog.Default()
	}
	return &adminSessionControllerImpl{
		api:       api,
		store:     store,
		inspector: inspector,
		view:      view,
		logger:    logger.With(slog.String("controller", "admin-session")),
		state:     LoggedOut,
	}
}

func (c *adminSessionControllerImpl) State() SessionState {
	return c.state
}

// Resume restores the session kept by the store, if it is still usable.
func (c *adminSessionControllerImpl) Resume(ctx context.Context, dateFilter string) {
	c.dateFilter = strings.TrimSpace(dateFilter)

	token := c.store.Get()
	if !c.usable(token) {
		if token != "" {
			c.store.Set("")
		}
		c.state = LoggedOut
		c.view.ShowLogin()
		return
	}

	c.enter()
	c.LoadAppointments(ctx, c.dateFilter)
}

func (c *adminSessionControllerImpl) Login(ctx context.Context, username, password string) {
	const op = "usecase.AdminSession.Login"

	c.view.SetLoginMessage("")

	credentials, err := auth.NewCredentials(username, password)
	if err != nil {
		c.view.SetLoginMessage(MsgLoginEmpty)
		return
	}

	token, err := c.api.Login(ctx, credentials)
	if err != nil {
		c.logger.WarnContext(ctx, "admin login failed",
			slog.String("op", op),
			slog.String("username", credentials.Username()),
			slog.String("error", err.Error()))
		if errs.Is(err, errs.ErrTransport) {
			c.view.SetLoginMessage(MsgLoginTransport)
		} else {
			c.view.SetLoginMessage(MsgLoginRejected)
		}
		return
	}

	c.store.Set(token)
	c.logger.InfoContext(ctx, "admin logged in",
		slog.String("op", op),
		slog.String("username", credentials.Username()))

	c.enter()
	c.LoadAppointments(ctx, c.dateFilter)
}

// LoadAppointments renders the reservations of dateFilter, or all of them when it is empty.
// Failures other than an authorization failure are only logged.
func (c *adminSessionControllerImpl) LoadAppointments(ctx context.Context, dateFilter string) {
	const op = "usecase.AdminSession.LoadAppointments"

	c.dateFilter = strings.TrimSpace(dateFilter)

	token, ok := c.authorize(ctx)
	if !ok {
		return
	}

	list, err := c.api.ListReservations(ctx, token, c.dateFilter)
	if err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			c.unauthorized(ctx)
			return
		}
		c.logger.ErrorContext(ctx, "failed to load reservations",
			slog.String("op", op),
			slog.String("date", c.dateFilter),
			slog.String("error", err.Error()))
		return
	}

	c.view.RenderReservations(list)
}

func (c *adminSessionControllerImpl) MarkComplete(ctx context.Context, id, dateFilter string) {
	const op = "usecase.AdminSession.MarkComplete"

	c.dateFilter = strings.TrimSpace(dateFilter)

	token, ok := c.authorize(ctx)
	if !ok {
		return
	}

	if err := c.api.UpdateStatus(ctx, token, id, reservation.StatusCompleted); err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			c.unauthorized(ctx)
			return
		}
		c.logger.ErrorContext(ctx, "failed to complete reservation",
			slog.String("op", op),
			slog.String("reservation_id", id),
			slog.String("error", err.Error()))
		c.view.Alert(MsgUpdateStatusFailed)
	}

	c.LoadAppointments(ctx, c.dateFilter)
}

// DeleteReservation asks for confirmation first; a declined prompt leaves everything untouched.
// After the call the list is reloaded whatever the outcome.
func (c *adminSessionControllerImpl) DeleteReservation(ctx context.Context, id, dateFilter string) {
	const op = "usecase.AdminSession.DeleteReservation"

	c.dateFilter = strings.TrimSpace(dateFilter)

	if !c.view.Confirm(MsgDeleteConfirm) {
		return
	}

	token, ok := c.authorize(ctx)
	if !ok {
		return
	}

	if err := c.api.DeleteReservation(ctx, token, id); err != nil {
		if errs.Is(err, errs.ErrUnauthorized) {
			c.unauthorized(ctx)
			return
		}
		c.logger.ErrorContext(ctx, "failed to delete reservation",
			slog.String("op", op),
			slog.String("reservation_id", id),
			slog.String("error", err.Error()))
		c.view.Alert(MsgDeleteFailed)
	}

	c.LoadAppointments(ctx, c.dateFilter)
}

func (c *adminSessionControllerImpl) Logout(ctx context.Context) {
	c.store.Set("")
	c.state = LoggedOut
	c.view.ShowLogin()
	c.logger.InfoContext(ctx, "admin logged out")
}

// authorize returns the stored token, or runs the unauthorized path when there is none worth sending.
func (c *adminSessionControllerImpl) authorize(ctx context.Context) (string, bool) {
	token := c.store.Get()
	if !c.usable(token) {
		c.unauthorized(ctx)
		return "", false
	}
	if c.state == LoggedOut {
		c.enter()
	}
	return token, true
}

func (c *adminSessionControllerImpl) usable(token string) bool {
	if token == "" {
		return false
	}
	return c.inspector == nil || !c.inspector.Expired(token)
}

func (c *adminSessionControllerImpl) enter() {
	c.state = LoggedIn
	c.view.ShowManagement()
}

// unauthorized drops the session: the token is cleared so a reload lands on the login view.
func (c *adminSessionControllerImpl) unauthorized(ctx context.Context) {
	c.logger.InfoContext(ctx, "admin session rejected",
		slog.String("state", c.state.String()))
	c.store.Set("")
	c.state = LoggedOut
	c.view.Alert(MsgLoginRequired)
	c.view.ShowLogin()
}
