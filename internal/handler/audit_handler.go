package handler

import (
	"net/http"
	"strconv"

	"smart-hospital-display/internal/service"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService *service.AuditService
}

func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetAuditLogs returns the newest staff actions, ?limit= caps the count
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Limit must be a positive integer")
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.GetRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}
