package main

import (
	"time"

	"codeberg.org/tidelist/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// allowed request rate for the unauthenticated auth routes, per client IP
const authRateLimit = "30-M"

// restricts cross-origin requests to the application's own origin
func CORSMiddleware(baseURL string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{baseURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// rate limits the login/callback/logout routes with an in-memory store
func AuthRateLimiter() gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(authRateLimit)
	if err != nil {
		logger.FatalErr(err, "invalid rate limit format", "rate", authRateLimit)
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate))
}

// logs each request with a correlation id, status and duration
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)

		c.Next()

		logger.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
