package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"frv-web/internal/domain/reservation"
	"frv-web/internal/pkg/errs"
)

type ReservationFormController interface {
	OnDateSelected(ctx context.Context, date string)
	OnSubmit(ctx context.Context, draft reservation.Draft)
}

type reservationFormControllerImpl struct {
	api    ReservationAPI
	view   ReservationFormView
	logger *slog.Logger

	// seq numbers availability checks; only the latest one may touch the view
	seq    atomic.Uint64
	viewMu sync.Mutex
}

func NewReservationFormController(api ReservationAPI, view ReservationFormView, logger *slog.Logger) ReservationFormController {
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationFormControllerImpl{
		api:    api,
		view:   view,
		logger: logger.With(slog.String("controller", "reservation-form")),
	}
}

func (c *reservationFormControllerImpl) OnDateSelected(ctx context.Context, date string) {
	const op = "usecase.ReservationForm.OnDateSelected"

	date = strings.TrimSpace(date)
	if date == "" {
		return
	}

	seq := c.seq.Add(1)
	availability, err := c.api.CheckAvailability(ctx, date)

	c.viewMu.Lock()
	defer c.viewMu.Unlock()
	if c.seq.Load() != seq {
		c.logger.DebugContext(ctx, "discarding stale availability response",
			slog.String("op", op),
			slog.String("date", date))
		return
	}

	if err != nil {
		c.logger.WarnContext(ctx, "availability check failed",
			slog.String("op", op),
			slog.String("date", date),
			slog.String("error", err.Error()))
		if errs.Is(err, errs.ErrTransport) {
			c.view.ShowAvailability(MsgAvailabilityTransport)
		} else {
			c.view.ShowAvailability(MsgAvailabilityRejected)
		}
		c.view.SetSubmitEnabled(false)
		return
	}

	c.view.ShowAvailability(fmt.Sprintf(MsgAvailabilityFormat, availability))
	c.view.SetSubmitEnabled(availability.CanBook())
}

func (c *reservationFormControllerImpl) OnSubmit(ctx context.Context, draft reservation.Draft) {
	const op = "usecase.ReservationForm.OnSubmit"

	if err := draft.Validate(); err != nil {
		c.view.Alert(MsgRequiredFields)
		return
	}

	id, err := c.api.CreateReservation(ctx, draft)
	if err != nil {
		c.logger.WarnContext(ctx, "reservation creation failed",
			slog.String("op", op),
			slog.String("error", err.Error()))
		switch {
		case errs.Is(err, errs.ErrTransport):
			c.view.Alert(MsgCreateTransport)
		case errs.ServerMessage(err) != "":
			c.view.Alert(errs.ServerMessage(err))
		default:
			c.view.Alert(MsgCreateFailed)
		}
		return
	}

	c.logger.InfoContext(ctx, "reservation created",
		slog.String("op", op),
		slog.String("reservation_id", id),
		slog.String("date", strings.TrimSpace(draft.Date)))

	c.view.Alert(fmt.Sprintf(MsgCreatedFormat, id))
	c.view.ResetForm()
	c.view.ShowAvailability("")
}
