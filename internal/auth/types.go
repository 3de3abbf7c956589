package auth

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// path of the route that starts the login flow; anonymous and invalid
// sessions are both redirected here
const LoginPath = "/auth/login"

var (
	// returned for every verification failure: bad signature, unknown key id,
	// issuer or audience mismatch, expiry, malformed token, key set fetch
	// error. Callers must not be able to tell which check failed.
	ErrInvalidToken = errors.New("invalid token")

	// returned when the authorization code exchange with the identity
	// provider does not yield an ID token
	ErrTokenExchangeFailed = errors.New("token exchange failed")
)

// represents the verified identity of a request
type Principal struct {
	Subject string
	Claims  jwt.MapClaims
}

// validates a signed session token and returns the principal it identifies
type Verifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}
