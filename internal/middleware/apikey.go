package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// APIKeyAuth protects mutating endpoints with the shared upload credential.
// The comparison is constant-time so the key cannot be probed byte by byte.
// Rejection happens before any of the request body is read.
func APIKeyAuth(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if expected == "" {
			logAuthFailure(c, http.StatusInternalServerError, "key_not_configured")
			writeAuthError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "API key is not configured")
			c.Abort()
			return
		}

		provided := c.GetHeader(apiKeyHeader)
		if provided == "" {
			logAuthFailure(c, http.StatusUnauthorized, "missing_key")
			writeAuthError(c, http.StatusUnauthorized, "AUTH_MISSING", "X-API-Key header is required")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			logAuthFailure(c, http.StatusUnauthorized, "invalid_key")
			writeAuthError(c, http.StatusUnauthorized, "AUTH_INVALID", "Invalid API key")
			c.Abort()
			return
		}

		c.Next()
	}
}

func writeAuthError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func logAuthFailure(c *gin.Context, status int, reason string) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = c.GetHeader("X-Request-Id")
	}
	log.Printf("api_key_auth status=%d method=%s path=%s client_ip=%s request_id=%s reason=%s",
		status, c.Request.Method, c.Request.URL.Path, c.ClientIP(), requestID, reason)
}
