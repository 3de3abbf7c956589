package auth

import (
	"codeberg.org/tidelist/server/internal/auth"
	"codeberg.org/tidelist/server/internal/config"
	"github.com/gin-gonic/gin"
)

// registers all authentication routes. Extra middleware (rate limiting) is
// applied to the whole group since every route here is unauthenticated.
func RegisterRoutes(router *gin.Engine, cfg *config.Config, sessions *auth.SessionStore, verifier auth.Verifier, exchanger *auth.Exchanger, middleware ...gin.HandlerFunc) {
	authGroup := router.Group("/auth", middleware...)
	{
		authGroup.GET("/login", LoginHandler(cfg))
		authGroup.GET("/callback", CallbackHandler(sessions, verifier, exchanger))
		authGroup.GET("/logout", LogoutHandler(cfg, sessions))
	}
}
