package handler

import (
	"net/http"

	"smart-hospital-display/internal/database"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports liveness and database reachability
func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.Ping(h.db); err != nil {
		log.Error().Err(err).Msg("Health check database ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"status":  "unhealthy",
			"error":   "database unavailable",
		})
		return
	}

	utils.SuccessResponse(c, gin.H{
		"status":  "healthy",
		"service": "smart-hospital-display",
	})
}
