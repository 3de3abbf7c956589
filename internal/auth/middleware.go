package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// guards protected routes: a request proceeds only with a session cookie
// holding a token that verifies.
//
// Anonymous requests and requests with invalid or expired tokens take the
// identical path back to the login route. No error page is rendered for
// either case, so a caller cannot distinguish "no session" from "bad
// session".
func RequireSession(store *SessionStore, verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := store.Read(c)
		if !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		principal, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(principalGinKey, principal)
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), principal))

		c.Next()
	}
}
