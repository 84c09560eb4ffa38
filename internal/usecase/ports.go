package usecase

import (
	"context"

	"frv-web/internal/domain/auth"
	"frv-web/internal/domain/reservation"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/ports.go -package=usecasemock

// ReservationAPI is the public, unauthenticated part of the Reservation API.
type ReservationAPI interface {
	CheckAvailability(ctx context.Context, date string) (reservation.Availability, error)
	CreateReservation(ctx context.Context, draft reservation.Draft) (string, error)
}

// AdminAPI is the bearer-token protected part of the Reservation API, plus the login that issues tokens.
type AdminAPI interface {
	Login(ctx context.Context, credentials auth.Credentials) (string, error)
	ListReservations(ctx context.Context, token, date string) ([]reservation.Reservation, error)
	UpdateStatus(ctx context.Context, token, id string, status reservation.Status) error
	DeleteReservation(ctx context.Context, token, id string) error
}

// SessionStore holds the one admin token of a browser. Set("") forgets it.
type SessionStore interface {
	Get() string
	Set(token string)
}

// TokenInspector tells whether a stored token is already known to be expired.
type TokenInspector interface {
	Expired(token string) bool
}
