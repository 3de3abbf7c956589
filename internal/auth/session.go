package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// name of the cookie carrying the verified ID token
const SessionCookieName = "session_token"

// encodes and decodes the session cookie.
//
// Cookie attributes are fixed policy: http-only, same-site lax (the
// identity provider's top-level redirect must still carry the cookie),
// path scoped to the application root, secure in production. The value is
// the raw signed token; there is no server-side session state.
type SessionStore struct {
	secure bool
}

// creates a session store; secure marks cookies Secure (production)
func NewSessionStore(secure bool) *SessionStore {
	return &SessionStore{secure: secure}
}

// sets the session cookie on the response
func (s *SessionStore) Write(c *gin.Context, token string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// reads the session token from the request. A missing cookie is the normal
// unauthenticated state, not an error.
func (s *SessionStore) Read(c *gin.Context) (string, bool) {
	cookie, err := c.Request.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}

// deletes the session cookie. Attributes must match Write exactly so the
// browser treats it as the same cookie regardless of its matching rules.
func (s *SessionStore) Clear(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
