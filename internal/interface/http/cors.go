package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// corsMiddleware restricts cross-origin callers to the configured allow-list.
// An unrecognized Origin gets no CORS headers at all; the browser then blocks
// the cross-origin read.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(origin, allowed) {
			headers := c.Writer.Header()
			headers.Set("Access-Control-Allow-Origin", origin)
			headers.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			headers.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			headers.Set("Access-Control-Allow-Credentials", "true")
			headers.Add("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, origin) {
			return true
		}
	}
	return false
}
