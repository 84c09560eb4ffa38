//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// key the fake Reservation API signs admin tokens with; the frontend never checks it
const signingKey = "test-signing-key"

func GenerateToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingKey))
	require.NoError(t, err)
	return token
}

func ValidToken(t *testing.T) string {
	t.Helper()
	return GenerateToken(t, "admin", time.Now().Add(time.Hour))
}

func ExpiredToken(t *testing.T) string {
	t.Helper()
	return GenerateToken(t, "admin", time.Now().Add(-time.Minute))
}
