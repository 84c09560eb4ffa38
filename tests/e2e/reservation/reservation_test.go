//go:build e2e

package reservation_test

import (
	"encoding/json"
	"net/http"
	"testing"

	resdto "frv-web/internal/handler/dto/response"
	"frv-web/internal/usecase"
	"frv-web/tests/common/builder"
	"frv-web/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type reservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) TestAvailability() {
	s.Run("remaining slots of a date", func() {
		status, body := s.Get("/reservar/disponibilidad?date=2025-03-14")
		s.Require().Equal(http.StatusOK, status)

		var response resdto.AvailabilityResponse
		s.Require().NoError(json.Unmarshal([]byte(body), &response))
		s.Equal(resdto.AvailabilityResponse{
			Date:          "2025-03-14",
			Message:       "Cupos disponibles: 1 / 3",
			SubmitEnabled: true,
		}, response)
	})
}

func (s *reservationSuite) TestSubmit() {
	s.Run("created on a free date", func() {
		form := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
			b.Date = "2025-03-20"
		}).BuildForm()

		status, body := s.PostForm("/reservar", form)

		s.Equal(http.StatusOK, status)
		s.Contains(body, "Reserva creada correctamente. ID: 100")
		s.True(s.API.Has("100"))
		s.Contains(body, `name="fecha" type="date" value=""`)
	})

	s.Run("last slot taken leaves submit disabled", func() {
		form := builder.NewReservationBuilder().BuildForm()

		_, body := s.PostForm("/reservar", form)
		s.Contains(body, "Reserva creada correctamente. ID: 100")

		_, body = s.PostForm("/reservar", form)
		s.Contains(body, "Sin cupos")
		s.Contains(body, "Cupos disponibles: 0 / 3")
		s.Contains(body, `type="submit" disabled>Reservar`)
		s.False(s.API.Has("101"))
	})

	s.Run("missing fields never reach the API", func() {
		form := builder.NewReservationBuilder().BuildForm()
		form.Set("nombre", "")

		_, body := s.PostForm("/reservar", form)

		s.Contains(body, usecase.MsgRequiredFields)
		for _, call := range s.API.Calls() {
			s.NotEqual("POST /api/reservations", call)
		}
	})
}
