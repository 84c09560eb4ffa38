//go:build unit || e2e

package builder

import (
	"net/url"

	"frv-web/internal/domain/reservation"
)

type ReservationBuilder struct {
	ID       string
	Name     string
	Phone    string
	Address  string
	Province string
	Date     string
	Time     string
	Problem  string
	Amount   string
	Status   reservation.Status
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       "42",
		Name:     "Juan Pérez",
		Phone:    "11 5555-0000",
		Address:  "Av. Siempre Viva 742",
		Province: "Buenos Aires",
		Date:     "2025-03-14",
		Time:     "09:30:00",
		Problem:  "Pérdida en el termotanque",
		Amount:   "15000",
		Status:   reservation.StatusPending,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() reservation.Reservation {
	return reservation.Reservation{
		ID:       r.ID,
		Name:     r.Name,
		Phone:    r.Phone,
		Address:  r.Address,
		Province: r.Province,
		Date:     r.Date,
		Time:     r.Time,
		Problem:  r.Problem,
		Amount:   r.Amount,
		Status:   r.Status,
	}
}

func (r *ReservationBuilder) BuildDraft() reservation.Draft {
	return reservation.Draft{
		Name:     r.Name,
		Phone:    r.Phone,
		Address:  r.Address,
		Province: r.Province,
		Date:     r.Date,
		Time:     r.Time,
		Problem:  r.Problem,
	}
}

// BuildRaw returns the record as the API sends it, with capitalised keys.
func (r *ReservationBuilder) BuildRaw() map[string]any {
	return map[string]any{
		"Id":        r.ID,
		"Nombre":    r.Name,
		"Telefono":  r.Phone,
		"Direccion": r.Address,
		"Provincia": r.Province,
		"Fecha":     r.Date,
		"Hora":      r.Time,
		"Problema":  r.Problem,
		"Costo":     r.Amount,
		"Estado":    r.Status.String(),
	}
}

// BuildForm returns the public reservation form as the browser posts it.
func (r *ReservationBuilder) BuildForm() url.Values {
	return url.Values{
		"nombre":    {r.Name},
		"telefono":  {r.Phone},
		"direccion": {r.Address},
		"provincia": {r.Province},
		"fecha":     {r.Date},
		"hora":      {r.Time},
		"problema":  {r.Problem},
	}
}
