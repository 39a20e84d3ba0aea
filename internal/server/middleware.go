package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	accounts "tradehub/internal/accountService"
	"tradehub/services/auction/helpers"
	"tradehub/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequiredMiddleware rejects requests without a valid bearer session
// token and stores the authenticated user's ID in the request context.
func AuthRequiredMiddleware(sessions *accounts.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			utils.JSONError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "authentication required")
			c.Abort()
			return
		}

		userID, err := sessions.Parse(tokenStr)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "invalid or expired session")
			utils.Warn("auth: session rejected", map[string]any{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(helpers.UserIDKey, userID)
		c.Next()
	}
}
