package jwt

import (
	"errors"
	"time"

	"frv-web/internal/pkg/clock"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNotJWT       = errors.New("token is not a jwt")
	ErrExpiredToken = errors.New("token expired")
)

// Claims are the fields the admin API puts in its tokens. Unknown tokens simply leave them empty.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspector reads admin tokens without verifying them. The frontend holds no signing key,
// so the signature is the API's business; the inspector only answers "is this obviously dead".
type Inspector struct {
	clock  clock.Clock
	parser *jwt.Parser
}

func NewInspector(c clock.Clock) *Inspector {
	return &Inspector{
		clock:  c,
		parser: jwt.NewParser(),
	}
}

// Claims parses tokenString unverified.
func (i *Inspector) Claims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrNotJWT
	}
	return claims, nil
}

// Expired reports whether the token carries an exp claim that lies in the past.
// Opaque (non-JWT) tokens are never considered expired here.
func (i *Inspector) Expired(tokenString string) bool {
	return errors.Is(i.Check(tokenString), ErrExpiredToken)
}

func (i *Inspector) Check(tokenString string) error {
	claims, err := i.Claims(tokenString)
	if err != nil {
		return nil
	}
	if claims.ExpiresAt == nil {
		return nil
	}
	if !i.now().Before(claims.ExpiresAt.Time) {
		return ErrExpiredToken
	}
	return nil
}

func (i *Inspector) now() time.Time {
	if i.clock == nil {
		return time.Now()
	}
	return i.clock.Now()
}
