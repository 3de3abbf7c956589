package main

import (
	authapi "codeberg.org/tidelist/server/api/rest/auth"
	"codeberg.org/tidelist/server/api/rest/health"
	todoapi "codeberg.org/tidelist/server/api/rest/todos"
	"codeberg.org/tidelist/server/internal/auth"
	"github.com/gin-gonic/gin"
)

// sets up all routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.cfg.BaseURL))

	router.GET("/health", health.Handler)

	// the gateway is the unauthenticated surface, so it gets rate limited
	authapi.RegisterRoutes(
		router,
		server.cfg,
		server.sessions,
		server.verifier,
		server.exchanger,
		AuthRateLimiter(),
	)

	guard := auth.RequireSession(server.sessions, server.verifier)
	todoapi.RegisterRoutes(router, server.todoRepo, guard)
}
