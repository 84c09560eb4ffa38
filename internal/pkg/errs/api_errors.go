package errs

import (
	"errors"
	"fmt"
)

// Failure classes of calls made against the Reservation API
var (
	// request never produced an HTTP response
	ErrTransport = errors.New("reservation api unreachable")

	// 401 on an authenticated call, or no usable token to send
	ErrUnauthorized = errors.New("unauthorized")

	ErrInvalidResponse = errors.New("invalid response payload")
)

// RejectedError is a non-2xx answer other than 401.
type RejectedError struct {
	StatusCode int
	// Message is the server supplied error text, empty when the payload had none
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reservation api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("reservation api returned status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage returns the server message of a rejection, or "" when err is not one.
func ServerMessage(err error) string {
	var rejected *RejectedError
	if As(err, &rejected) {
		return rejected.Message
	}
	return ""
}

func IsRejected(err error) bool {
	var rejected *RejectedError
	return As(err, &rejected)
}
