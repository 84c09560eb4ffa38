package auth

import (
	"errors"
	"strings"
)

var (
	ErrEmptyCredentials = errors.New("username and password are required")
)

// Credentials of the single admin account; both parts are trimmed and non-empty.
type Credentials struct {
	username string
	password string
}

func NewCredentials(username, password string) (Credentials, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return Credentials{}, ErrEmptyCredentials
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() string {
	return c.username
}

func (c Credentials) Password() string {
	return c.password
}
