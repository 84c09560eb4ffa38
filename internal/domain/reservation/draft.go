package reservation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrMissingRequiredFields = errors.New("missing required reservation fields")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Draft is a reservation as typed by a customer, before the API assigns it an identifier.
type Draft struct {
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Address  string
	Province string
	Date     string `validate:"required"`
	Time     string `validate:"required"`
	Problem  string
}

// Payload is the creation body the API expects.
type Payload struct {
	Nombre    string `json:"Nombre"`
	Telefono  string `json:"Telefono"`
	Direccion string `json:"Direccion"`
	Provincia string `json:"Provincia"`
	Fecha     string `json:"Fecha"`
	Hora      string `json:"Hora"`
	Problema  string `json:"Problema"`
}

// Validate checks the required fields; whitespace-only values count as missing.
func (d Draft) Validate() error {
	if err := validate.Struct(d.trimmed()); err != nil {
		return ErrMissingRequiredFields
	}
	return nil
}

func (d Draft) ToPayload() Payload {
	t := d.trimmed()
	return Payload{
		Nombre:    t.Name,
		Telefono:  t.Phone,
		Direccion: t.Address,
		Provincia: t.Province,
		Fecha:     t.Date,
		Hora:      t.Time,
		Problema:  t.Problem,
	}
}

func (d Draft) trimmed() Draft {
	return Draft{
		Name:     strings.TrimSpace(d.Name),
		Phone:    strings.TrimSpace(d.Phone),
		Address:  strings.TrimSpace(d.Address),
		Province: strings.TrimSpace(d.Province),
		Date:     strings.TrimSpace(d.Date),
		Time:     strings.TrimSpace(d.Time),
		Problem:  strings.TrimSpace(d.Problem),
	}
}
