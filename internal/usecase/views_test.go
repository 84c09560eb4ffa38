//go:build unit

package usecase_test

import "frv-web/internal/domain/reservation"

type formViewRecorder struct {
	availability  []string
	submitEnabled []bool
	alerts        []string
	resets        int
}

func (v *formViewRecorder) ShowAvailability(msg string) { v.availability = append(v.availability, msg) }
func (v *formViewRecorder) SetSubmitEnabled(enabled bool) { v.submitEnabled = append(v.submitEnabled, enabled) }
func (v *formViewRecorder) Alert(msg string) { v.alerts = append(v.alerts, msg) }
func (v *formViewRecorder) ResetForm() { v.resets++ }

type adminViewRecorder struct {
	screen       string
	loginMessage string
	alerts       []string
	rendered     [][]reservation.Reservation
	confirm      bool
	prompts      []string
}

func (v *adminViewRecorder) ShowLogin() { v.screen = "login" }
func (v *adminViewRecorder) ShowManagement() { v.screen = "management" }
func (v *adminViewRecorder) SetLoginMessage(msg string) { v.loginMessage = msg }
func (v *adminViewRecorder) Alert(msg string) { v.alerts = append(v.alerts, msg) }

func (v *adminViewRecorder) RenderReservations(reservations []reservation.Reservation) {
	v.rendered = append(v.rendered, reservations)
}

func (v *adminViewRecorder) Confirm(prompt string) bool {
	v.prompts = append(v.prompts, prompt)
	return v.confirm
}
