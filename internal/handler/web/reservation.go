package web

import (
	"log/slog"
	"net/http"
	"strings"

	"frv-web/internal/domain/reservation"
	reqdto "frv-web/internal/handler/dto/request"
	resdto "frv-web/internal/handler/dto/response"
	"frv-web/internal/handler/httperr"
	"frv-web/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ReservationHandler struct {
	api    usecase.ReservationAPI
	logger *slog.Logger
}

func NewReservationHandler(api usecase.ReservationAPI, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{
		api:    api,
		logger: logger,
	}
}

// Index renders the public site with an empty reservation form.
func (h *ReservationHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", NewFormPage(reqdto.ReservationForm{}))
}

// @Summary Check availability
// @Description Remaining reservation slots of a date, phrased for the reservation form
// @Tags reservations
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /reservar/disponibilidad [get]
func (h *ReservationHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "date is required", nil)
		return
	}

	page := NewFormPage(reqdto.ReservationForm{Date: q.Date})
	ctl := usecase.NewReservationFormController(h.api, page, h.logger)
	ctl.OnDateSelected(c.Request.Context(), q.Date)

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Date:          q.Date,
		Message:       page.Availability,
		SubmitEnabled: page.SubmitEnabled,
	})
}

// Submit creates a reservation from the posted form and re-renders the site with the outcome.
func (h *ReservationHandler) Submit(c *gin.Context) {
	var form reqdto.ReservationForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, err)
		return
	}

	var draft reservation.Draft
	if err := copier.Copy(&draft, &form); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	page := NewFormPage(form)
	ctl := usecase.NewReservationFormController(h.api, page, h.logger)
	ctl.OnSubmit(c.Request.Context(), draft)
	if strings.TrimSpace(page.Values.Date) != "" {
		// the form came back with its date: show that date's availability again
		ctl.OnDateSelected(c.Request.Context(), page.Values.Date)
	}

	c.HTML(http.StatusOK, "index.tmpl", page)
}
