package middleware

import (
	"net/http"
	"strings"

	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// StaffKeyHeader carries the plain staff key on mutating requests
const StaffKeyHeader = "X-API-Key"

// StaffKeyAuth requires X-API-Key to match the configured bcrypt hash.
// An empty hash disables the check.
func StaffKeyAuth(apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKeyHash == "" {
			c.Next()
			return
		}

		apiKey := strings.TrimSpace(c.GetHeader(StaffKeyHeader))
		if apiKey == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "API key is required in X-API-Key header")
			c.Abort()
			return
		}

		if !utils.CompareAPIKey(apiKeyHash, apiKey) {
			log.Warn().
				Str("client_ip", c.ClientIP()).
				Str("path", c.Request.URL.Path).
				Msg("Rejected invalid staff key")
			utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid API key")
			c.Abort()
			return
		}

		c.Next()
	}
}
