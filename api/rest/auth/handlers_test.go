package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	internalauth "codeberg.org/tidelist/server/internal/auth"
	"codeberg.org/tidelist/server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeVerifier struct {
	subject string
	err     error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (internalauth.Principal, error) {
	if f.err != nil {
		return internalauth.Principal{}, f.err
	}

	return internalauth.Principal{Subject: f.subject}, nil
}

func testConfig(domain string) *config.Config {
	return &config.Config{
		BaseURL:      "https://app.example.com",
		Auth0Domain:  domain,
		ClientID:     "client-abc",
		ClientSecret: "shhh",
		Environment:  "development",
	}
}

func gatewayRouter(cfg *config.Config, verifier internalauth.Verifier) *gin.Engine {
	sessions := internalauth.NewSessionStore(cfg.IsProduction())
	exchanger := internalauth.NewExchanger(cfg.Auth0Domain, cfg.ClientID, cfg.ClientSecret, cfg.BaseURL+"/auth/callback")

	router := gin.New()
	RegisterRoutes(router, cfg, sessions, verifier, exchanger)

	return router
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == internalauth.SessionCookieName {
			return cookie
		}
	}

	return nil
}

func TestLoginRedirectsToAuthorizationEndpoint(t *testing.T) {
	cfg := testConfig("https://tenant.example.auth0.com")
	router := gatewayRouter(cfg, &fakeVerifier{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	require.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get("Location"))
	require.NoError(t, err)

	assert.Equal(t, "tenant.example.auth0.com", location.Host)
	assert.Equal(t, "/authorize", location.Path)

	query := location.Query()
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "client-abc", query.Get("client_id"))
	assert.Equal(t, "https://app.example.com/auth/callback", query.Get("redirect_uri"))
	assert.Equal(t, "openid profile email", query.Get("scope"))
}

func TestCallbackWithoutCode(t *testing.T) {
	cfg := testConfig("https://tenant.example.auth0.com")
	router := gatewayRouter(cfg, &fakeVerifier{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/callback", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authorization code not found")
	assert.Nil(t, sessionCookie(rec))
}

func TestCallbackEstablishesSession(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "ABC123", body["code"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id_token": "valid.id.token"})
	}))
	defer provider.Close()

	cfg := testConfig(provider.URL)
	router := gatewayRouter(cfg, &fakeVerifier{subject: "auth0|user-1"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/auth/callback?code=ABC123", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "valid.id.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestCallbackFailuresAreIndistinguishable(t *testing.T) {
	// provider that rejects the exchange
	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer rejecting.Close()

	// provider that exchanges fine; verification fails instead
	accepting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id_token": "tampered.token"})
	}))
	defer accepting.Close()

	exchangeFailed := httptest.NewRecorder()
	gatewayRouter(testConfig(rejecting.URL), &fakeVerifier{}).
		ServeHTTP(exchangeFailed, httptest.NewRequest(http.MethodGet, "/auth/callback?code=X", nil))

	verifyFailed := httptest.NewRecorder()
	gatewayRouter(testConfig(accepting.URL), &fakeVerifier{err: internalauth.ErrInvalidToken}).
		ServeHTTP(verifyFailed, httptest.NewRequest(http.MethodGet, "/auth/callback?code=X", nil))

	assert.Equal(t, http.StatusBadRequest, exchangeFailed.Code)
	assert.Equal(t, http.StatusBadRequest, verifyFailed.Code)
	assert.Equal(t, exchangeFailed.Body.String(), verifyFailed.Body.String())
	assert.Equal(t, "Authentication failed", verifyFailed.Body.String())
	assert.Nil(t, sessionCookie(verifyFailed))
}

func TestLogoutClearsSessionAndRedirectsToProvider(t *testing.T) {
	cfg := testConfig("https://tenant.example.auth0.com")
	router := gatewayRouter(cfg, &fakeVerifier{})

	for _, withSession := range []bool{true, false} {
		req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
		if withSession {
			req.AddCookie(&http.Cookie{Name: internalauth.SessionCookieName, Value: "tok"})
		}

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusFound, rec.Code)

		location, err := url.Parse(rec.Header().Get("Location"))
		require.NoError(t, err)
		assert.Equal(t, "tenant.example.auth0.com", location.Host)
		assert.Equal(t, "/v2/logout", location.Path)
		assert.Equal(t, "client-abc", location.Query().Get("client_id"))
		assert.Equal(t, "https://app.example.com", location.Query().Get("returnTo"))

		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Less(t, cookie.MaxAge, 0)
	}
}
