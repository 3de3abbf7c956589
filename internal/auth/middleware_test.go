package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	principal Principal
	err       error
	calls     int
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (Principal, error) {
	f.calls++

	if f.err != nil {
		return Principal{}, f.err
	}

	return f.principal, nil
}

func guardedRouter(verifier Verifier, handled *bool) *gin.Engine {
	store := NewSessionStore(false)

	router := gin.New()
	router.GET("/todos", RequireSession(store, verifier), func(c *gin.Context) {
		*handled = true
		c.Status(http.StatusOK)
	})

	return router
}

func TestRequireSessionRedirectsAnonymousRequests(t *testing.T) {
	verifier := &fakeVerifier{}
	handled := false
	router := guardedRouter(verifier, &handled)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/todos", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.False(t, handled)
	// no verification attempted without a cookie
	assert.Zero(t, verifier.calls)
}

func TestRequireSessionRedirectsInvalidSessionsIdentically(t *testing.T) {
	verifier := &fakeVerifier{err: ErrInvalidToken}
	handled := false
	router := guardedRouter(verifier, &handled)

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// invalid session takes the exact same path as no session
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	assert.False(t, handled)
	assert.Equal(t, 1, verifier.calls)
}

func TestRequireSessionAttachesPrincipal(t *testing.T) {
	verifier := &fakeVerifier{principal: Principal{Subject: "auth0|user-42"}}
	store := NewSessionStore(false)

	var fromGin Principal
	var fromCtx Principal
	var ctxOK bool

	router := gin.New()
	router.GET("/todos", RequireSession(store, verifier), func(c *gin.Context) {
		fromGin, _ = CurrentPrincipal(c)
		fromCtx, ctxOK = PrincipalFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "valid-token"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "auth0|user-42", fromGin.Subject)
	assert.True(t, ctxOK)
	assert.Equal(t, "auth0|user-42", fromCtx.Subject)
}
