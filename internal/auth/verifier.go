package auth

import (
	"context"
	"sync"
	"time"

	"codeberg.org/tidelist/server/internal/logger"
	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// configures a JWKSVerifier
type VerifierConfig struct {
	// identity provider base URL, no trailing slash
	Domain string

	// OAuth client identifier, expected as the token's audience
	ClientID string

	// optional override of the key set endpoint, defaults to
	// <domain>/.well-known/jwks.json
	JWKSURL string
}

// verifies externally issued ID tokens against the identity provider's
// published key set.
//
// The key set is shared across all in-flight requests. It starts empty and
// is fetched on the first verification; the mutex coalesces concurrent
// first-time fetches into a single network call. After that the keyfunc
// library refreshes keys in the background and on unknown key ids.
type JWKSVerifier struct {
	issuer   string
	audience string
	jwksURL  string

	// governs the lifetime of the background key refresh
	baseCtx context.Context

	mu   sync.Mutex
	jwks keyfunc.Keyfunc
}

// creates a verifier for the configured identity provider
func NewJWKSVerifier(ctx context.Context, cfg VerifierConfig) *JWKSVerifier {
	jwksURL := cfg.JWKSURL
	if jwksURL == "" {
		jwksURL = cfg.Domain + "/.well-known/jwks.json"
	}

	return &JWKSVerifier{
		// the provider issues tokens with a trailing slash on the issuer
		issuer:   cfg.Domain + "/",
		audience: cfg.ClientID,
		jwksURL:  jwksURL,
		baseCtx:  ctx,
	}
}

// validates signature, issuer, audience and expiry. Every failure is
// reported as ErrInvalidToken; the cause is only logged.
func (v *JWKSVerifier) Verify(_ context.Context, token string) (Principal, error) {
	if token == "" {
		return Principal{}, ErrInvalidToken
	}

	kf, err := v.keyfunc()
	if err != nil {
		// fail closed: an unreachable key set never authenticates anyone
		logger.ErrorErr(err, "jwks fetch failed", "url", v.jwksURL)
		return Principal{}, ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	opts := []jwt.ParserOption{
		jwt.WithLeeway(5 * time.Second),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.audience),
		jwt.WithExpirationRequired(),
	}

	parsed, err := jwt.ParseWithClaims(token, claims, kf.Keyfunc, opts...)
	if err != nil || !parsed.Valid {
		logger.Debug("token rejected", "error", err)
		return Principal{}, ErrInvalidToken
	}

	return Principal{
		Subject: stringClaim(claims, "sub"),
		Claims:  claims,
	}, nil
}

// returns the cached key set handle, fetching it on first use
func (v *JWKSVerifier) keyfunc() (keyfunc.Keyfunc, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.jwks != nil {
		return v.jwks, nil
	}

	kf, err := keyfunc.NewDefaultCtx(v.baseCtx, []string{v.jwksURL})
	if err != nil {
		// not cached: the next verification retries the fetch
		return nil, err
	}

	v.jwks = kf
	return kf, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}
