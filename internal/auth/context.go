package auth

import (
	"context"

	"github.com/gin-gonic/gin"
)

type principalContextKey struct{}

// gin context key set by RequireSession
const principalGinKey = "principal"

// returns a copy of ctx carrying the principal
func WithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

// extracts the principal from a request context
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok
}

// extracts the principal set by RequireSession from the gin context
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(principalGinKey)

	if !exists {
		return Principal{}, false
	}

	principal, ok := value.(Principal)
	return principal, ok
}
