package middleware

import (
	"net/http"

	"smart-hospital-display/internal/config"

	"github.com/gin-gonic/gin"
)

// CORS returns a middleware that allows the configured dashboard origins
func CORS(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		// Check if origin is in allowed list; a listed origin beats the wildcard
		allowed, wildcard := false, false
		for _, allowedOrigin := range cfg.CORS.AllowedOrigins {
			if origin == allowedOrigin && allowedOrigin != "*" {
				allowed = true
				break
			}
			if allowedOrigin == "*" {
				wildcard = true
			}
		}

		if origin != "" && (allowed || wildcard) {
			if allowed {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
				c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				c.Writer.Header().Add("Vary", "Origin")
			} else {
				// Credentials are never allowed for an unlisted origin
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key, X-Staff-Member, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
			c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		}

		// Handle preflight OPTIONS request
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
