package usecase

import "frv-web/internal/domain/reservation"

// ReservationFormView is what the public reservation form can show.
type ReservationFormView interface {
	ShowAvailability(msg string)
	SetSubmitEnabled(enabled bool)
	Alert(msg string)
	ResetForm()
}

// AdminView is what the admin panel can show.
type AdminView interface {
	ShowLogin()
	ShowManagement()
	SetLoginMessage(msg string)
	Alert(msg string)
	RenderReservations(reservations []reservation.Reservation)
	// Confirm asks the user to approve prompt and reports the answer.
	Confirm(prompt string) bool
}
