//go:build unit || e2e

package builder

import (
	"net/url"

	"frv-web/internal/domain/auth"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "admin",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildCredentials() auth.Credentials {
	credentials, err := auth.NewCredentials(a.Username, a.Password)
	if err != nil {
		panic(err)
	}
	return credentials
}

func (a *AuthBuilder) BuildForm() url.Values {
	return url.Values{
		"username": {a.Username},
		"password": {a.Password},
	}
}
