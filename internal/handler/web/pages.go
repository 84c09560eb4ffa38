package web

import (
	"html/template"

	"frv-web/internal/domain/reservation"
	reqdto "frv-web/internal/handler/dto/request"
	"frv-web/internal/handler/render"
)

// FormPage is the state of the public site for one response. It is the reservation form view.
type FormPage struct {
	Alerts        []string
	Availability  string
	SubmitEnabled bool
	Values        reqdto.ReservationForm
}

func NewFormPage(values reqdto.ReservationForm) *FormPage {
	return &FormPage{
		SubmitEnabled: true,
		Values:        values,
	}
}

func (p *FormPage) ShowAvailability(msg string) {
	p.Availability = msg
}

func (p *FormPage) SetSubmitEnabled(enabled bool) {
	p.SubmitEnabled = enabled
}

func (p *FormPage) Alert(msg string) {
	p.Alerts = append(p.Alerts, msg)
}

func (p *FormPage) ResetForm() {
	p.Values = reqdto.ReservationForm{}
	p.SubmitEnabled = true
}

type adminScreen int

const (
	screenLogin adminScreen = iota
	screenManagement
)

// AdminPage is the state of the admin panel for one response. It is the admin session view.
type AdminPage struct {
	Alerts       []string
	LoginMessage string
	Username     string
	DateFilter   string
	Reservations []reservation.Reservation

	// ConfirmPrompt is set when an action waits for the user's approval; ConfirmAction is where the approval goes.
	ConfirmPrompt string
	ConfirmAction string

	screen    adminScreen
	confirmed bool
}

func NewAdminPage(dateFilter string) *AdminPage {
	return &AdminPage{DateFilter: dateFilter}
}

// WithConfirmation records the user's earlier answer to a confirmation prompt for action.
func (p *AdminPage) WithConfirmation(action string, confirmed bool) *AdminPage {
	p.ConfirmAction = action
	p.confirmed = confirmed
	return p
}

func (p *AdminPage) ShowLogin() {
	p.screen = screenLogin
}

func (p *AdminPage) ShowManagement() {
	p.screen = screenManagement
}

func (p *AdminPage) SetLoginMessage(msg string) {
	p.LoginMessage = msg
}

func (p *AdminPage) Alert(msg string) {
	p.Alerts = append(p.Alerts, msg)
}

func (p *AdminPage) RenderReservations(reservations []reservation.Reservation) {
	if reservations == nil {
		reservations = []reservation.Reservation{}
	}
	p.Reservations = reservations
}

func (p *AdminPage) Confirm(prompt string) bool {
	if p.confirmed {
		return true
	}
	p.ConfirmPrompt = prompt
	return false
}

func (p *AdminPage) LoggedIn() bool {
	return p.screen == screenManagement
}

// Rows is the reservations table body.
func (p *AdminPage) Rows() template.HTML {
	return render.Rows(p.Reservations)
}
