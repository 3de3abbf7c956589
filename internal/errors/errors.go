package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/tidelist/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP handlers:
//   - Use errors.DataError(), errors.BadRequest(), etc. for request-ending errors
//     These functions handle both logging and the HTTP response
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and a response helper for the same error
//
// For repositories/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond
//   - Do not log errors in non-handler code (avoid double logging)

// returns a 400 bad request with a plain text body
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}

	c.String(http.StatusBadRequest, message)
	c.Abort()
}

// returns a 400 bad request for a data-layer failure, body "Error: <message>"
func DataError(c *gin.Context, err error) {
	logger.ErrorErr(err, "data access failed",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.String(http.StatusBadRequest, "Error: "+sanitizeError(err))
	c.Abort()
}

// returns a 400 bad request for a failed login attempt
//
// The body is deliberately generic: exchange failures and token verification
// failures must be indistinguishable to the client.
func AuthenticationFailed(c *gin.Context, err error) {
	logger.ErrorErr(err, "authentication failed",
		"path", c.Request.URL.Path,
	)

	c.String(http.StatusBadRequest, "Authentication failed")
	c.Abort()
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()
	env := os.Getenv("ENVIRONMENT")

	if env != "production" {
		return errMsg
	}

	if strings.Contains(errMsg, "database") || strings.Contains(errMsg, "sql") {
		return "database operation failed"
	}

	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "network") {
		return "connection error occurred"
	}

	if strings.Contains(errMsg, "timeout") {
		return "request timed out"
	}

	if strings.Contains(errMsg, "not found") {
		return "resource not found"
	}

	return "an error occurred"
}
