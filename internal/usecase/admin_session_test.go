//go:build unit

package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"frv-web/internal/domain/reservation"
	"frv-web/internal/infra/session"
	"frv-web/internal/pkg/errs"
	"frv-web/internal/usecase"
	"frv-web/tests/common/builder"
	usecasemock "frv-web/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const adminToken = "admin-token"

type AdminSessionTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockAPI       *usecasemock.MockAdminAPI
	mockInspector *usecasemock.MockTokenInspector
	store         *session.MemoryStore
	view          *adminViewRecorder
	ctl           usecase.AdminSessionController
}

func (s *AdminSessionTestSuite) SetupTest() {
	s.setup(adminToken)
}

func (s *AdminSessionTestSuite) setup(storedToken string) {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAPI = usecasemock.NewMockAdminAPI(s.mockCtrl)
	s.mockInspector = usecasemock.NewMockTokenInspector(s.mockCtrl)
	s.mockInspector.EXPECT().Expired(gomock.Any()).Return(false).AnyTimes()
	s.store = session.NewMemoryStore(storedToken)
	s.view = &adminViewRecorder{}
	s.ctl = usecase.NewAdminSessionController(s.mockAPI, s.store, s.mockInspector, s.view, nil)
}

func (s *AdminSessionTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminSessionSuite(t *testing.T) {
	suite.Run(t, new(AdminSessionTestSuite))
}

func unauthorizedErr() error {
	return errs.Wrapf(errs.ErrUnauthorized, "%s %s", http.MethodGet, "/reservations")
}

func (s *AdminSessionTestSuite) TestResume() {
	ctx := context.Background()
	list := []reservation.Reservation{builder.NewReservationBuilder().BuildDomain()}

	s.Run("stored token opens management and loads the list", func() {
		s.setup(adminToken)
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "2025-03-14").Return(list, nil).Times(1)

		s.ctl.Resume(ctx, "2025-03-14")

		s.Equal(usecase.LoggedIn, s.ctl.State())
		s.Equal("management", s.view.screen)
		s.Equal([][]reservation.Reservation{list}, s.view.rendered)
	})

	s.Run("no stored token shows login without requests", func() {
		s.setup("")
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ctl.Resume(ctx, "")

		s.Equal(usecase.LoggedOut, s.ctl.State())
		s.Equal("login", s.view.screen)
		s.Empty(s.view.alerts)
	})

	s.Run("expired token is dropped without requests", func() {
		s.mockCtrl = gomock.NewController(s.T())
		s.mockAPI = usecasemock.NewMockAdminAPI(s.mockCtrl)
		s.mockInspector = usecasemock.NewMockTokenInspector(s.mockCtrl)
		s.mockInspector.EXPECT().Expired("stale").Return(true)
		s.store = session.NewMemoryStore("stale")
		s.view = &adminViewRecorder{}
		s.ctl = usecase.NewAdminSessionController(s.mockAPI, s.store, s.mockInspector, s.view, nil)

		s.ctl.Resume(ctx, "")

		s.Equal(usecase.LoggedOut, s.ctl.State())
		s.Equal("login", s.view.screen)
		s.Empty(s.store.Get())
	})
}

func (s *AdminSessionTestSuite) TestLogin() {
	ctx := context.Background()
	auth := builder.NewAuthBuilder()

	s.Run("success: stores token and loads list", func() {
		s.setup("")
		gomock.InOrder(
			s.mockAPI.EXPECT().Login(gomock.Any(), auth.BuildCredentials()).Return("new-token", nil),
			s.mockAPI.EXPECT().ListReservations(gomock.Any(), "new-token", "").Return(nil, nil),
		)

		s.ctl.Login(ctx, auth.Username, auth.Password)

		s.Equal(usecase.LoggedIn, s.ctl.State())
		s.Equal("management", s.view.screen)
		s.Equal("new-token", s.store.Get())
		s.Empty(s.view.loginMessage)
		s.Len(s.view.rendered, 1)
	})

	s.Run("success: credentials are trimmed", func() {
		s.setup("")
		s.mockAPI.EXPECT().Login(gomock.Any(), auth.BuildCredentials()).Return("new-token", nil)
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), "new-token", "").Return(nil, nil)

		s.ctl.Login(ctx, "  "+auth.Username+" ", " "+auth.Password+"  ")

		s.Equal(usecase.LoggedIn, s.ctl.State())
	})

	s.Run("error: empty credentials issue no request", func() {
		for _, tc := range []struct{ username, password string }{
			{"", "secret"},
			{"admin", ""},
			{"  ", "  "},
		} {
			s.setup("")
			s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

			s.ctl.Login(ctx, tc.username, tc.password)

			s.Equal(usecase.MsgLoginEmpty, s.view.loginMessage)
			s.Equal(usecase.LoggedOut, s.ctl.State())
		}
	})

	s.Run("error: rejected credentials", func() {
		s.setup("")
		s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", &errs.RejectedError{StatusCode: http.StatusUnauthorized})

		s.ctl.Login(ctx, auth.Username, "wrong")

		s.Equal(usecase.MsgLoginRejected, s.view.loginMessage)
		s.Equal(usecase.LoggedOut, s.ctl.State())
		s.Empty(s.store.Get())
	})

	s.Run("error: transport failure", func() {
		s.setup("")
		s.mockAPI.EXPECT().Login(gomock.Any(), gomock.Any()).
			Return("", errs.Mark(errs.New("connection refused"), errs.ErrTransport))

		s.ctl.Login(ctx, auth.Username, auth.Password)

		s.Equal(usecase.MsgLoginTransport, s.view.loginMessage)
		s.Equal(usecase.LoggedOut, s.ctl.State())
	})
}

func (s *AdminSessionTestSuite) TestLoadAppointments() {
	ctx := context.Background()

	s.Run("empty list is rendered", func() {
		s.setup(adminToken)
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "").Return([]reservation.Reservation{}, nil)

		s.ctl.LoadAppointments(ctx, "")

		s.Equal([][]reservation.Reservation{{}}, s.view.rendered)
		s.Equal(usecase.LoggedIn, s.ctl.State())
	})

	s.Run("401 returns to login and clears the token", func() {
		s.setup(adminToken)
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "").Return(nil, unauthorizedErr())

		s.ctl.LoadAppointments(ctx, "")

		s.Equal(usecase.LoggedOut, s.ctl.State())
		s.Equal("login", s.view.screen)
		s.Equal([]string{usecase.MsgLoginRequired}, s.view.alerts)
		s.Empty(s.store.Get())
		s.Empty(s.view.rendered)
	})

	s.Run("missing token short-circuits", func() {
		s.setup("")
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ctl.LoadAppointments(ctx, "")

		s.Equal("login", s.view.screen)
		s.Equal([]string{usecase.MsgLoginRequired}, s.view.alerts)
	})

	s.Run("other failures are only logged", func() {
		s.setup(adminToken)
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "2025-03-14").
			Return(nil, &errs.RejectedError{StatusCode: http.StatusInternalServerError})

		s.ctl.LoadAppointments(ctx, "2025-03-14")

		s.Empty(s.view.alerts)
		s.Empty(s.view.rendered)
		s.Equal(usecase.LoggedIn, s.ctl.State())
		s.Equal(adminToken, s.store.Get())
	})
}

func (s *AdminSessionTestSuite) TestMarkComplete() {
	ctx := context.Background()

	s.Run("success: reloads with the filter", func() {
		s.setup(adminToken)
		gomock.InOrder(
			s.mockAPI.EXPECT().UpdateStatus(gomock.Any(), adminToken, "42", reservation.StatusCompleted).Return(nil),
			s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "2025-03-14").Return(nil, nil),
		)

		s.ctl.MarkComplete(ctx, "42", "2025-03-14")

		s.Empty(s.view.alerts)
		s.Len(s.view.rendered, 1)
	})

	s.Run("failure alerts and still reloads", func() {
		s.setup(adminToken)
		gomock.InOrder(
			s.mockAPI.EXPECT().UpdateStatus(gomock.Any(), adminToken, "42", reservation.StatusCompleted).
				Return(&errs.RejectedError{StatusCode: http.StatusNotFound}),
			s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "").Return(nil, nil),
		)

		s.ctl.MarkComplete(ctx, "42", "")

		s.Equal([]string{usecase.MsgUpdateStatusFailed}, s.view.alerts)
		s.Len(s.view.rendered, 1)
	})

	s.Run("401 logs out without reload", func() {
		s.setup(adminToken)
		s.mockAPI.EXPECT().UpdateStatus(gomock.Any(), adminToken, "42", reservation.StatusCompleted).Return(unauthorizedErr())
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ctl.MarkComplete(ctx, "42", "")

		s.Equal([]string{usecase.MsgLoginRequired}, s.view.alerts)
		s.Equal(usecase.LoggedOut, s.ctl.State())
	})
}

func (s *AdminSessionTestSuite) TestDeleteReservation() {
	ctx := context.Background()

	s.Run("declined confirmation does nothing", func() {
		s.setup(adminToken)
		s.view.confirm = false
		s.mockAPI.EXPECT().DeleteReservation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockAPI.EXPECT().ListReservations(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		s.ctl.DeleteReservation(ctx, "42", "")

		s.Equal([]string{usecase.MsgDeleteConfirm}, s.view.prompts)
		s.Empty(s.view.alerts)
		s.Empty(s.view.rendered)
	})

	s.Run("confirmed: deletes and reloads", func() {
		s.setup(adminToken)
		s.view.confirm = true
		gomock.InOrder(
			s.mockAPI.EXPECT().DeleteReservation(gomock.Any(), adminToken, "42").Return(nil),
			s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "").Return(nil, nil),
		)

		s.ctl.DeleteReservation(ctx, "42", "")

		s.Empty(s.view.alerts)
		s.Len(s.view.rendered, 1)
	})

	s.Run("failure alerts and still reloads", func() {
		s.setup(adminToken)
		s.view.confirm = true
		gomock.InOrder(
			s.mockAPI.EXPECT().DeleteReservation(gomock.Any(), adminToken, "42").
				Return(errs.Mark(errs.New("timeout"), errs.ErrTransport)),
			s.mockAPI.EXPECT().ListReservations(gomock.Any(), adminToken, "").Return(nil, nil),
		)

		s.ctl.DeleteReservation(ctx, "42", "")

		s.Equal([]string{usecase.MsgDeleteFailed}, s.view.alerts)
		s.Len(s.view.rendered, 1)
	})
}

func (s *AdminSessionTestSuite) TestLogout() {
	s.setup(adminToken)

	s.ctl.Logout(context.Background())

	s.Empty(s.store.Get())
	s.Equal(usecase.LoggedOut, s.ctl.State())
	s.Equal("login", s.view.screen)
}
