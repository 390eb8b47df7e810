package handler

import (
	"net/http"

	"smart-hospital-display/internal/service"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	alertService *service.AlertService
}

func NewAlertHandler(alertService *service.AlertService) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
	}
}

// CreateAlertRequest represents the request body for raising an alert
type CreateAlertRequest struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Location  string `json:"location"`
	CreatedBy string `json:"created_by"`
}

// GetAlerts returns active alerts and the recent dismissal history
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	snapshot, err := h.alertService.GetAlerts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"active_alerts": snapshot.ActiveAlerts,
		"alert_history": snapshot.AlertHistory,
	})
}

// CreateAlert raises a new active alert
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	alert, err := h.alertService.Create(c.Request.Context(), req.Type, req.Message, req.Location, req.CreatedBy)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusCreated, utils.StatusSuccess, "Alert created successfully", gin.H{"alert": alert})
}

// DismissAlert deactivates an alert and moves it to the history
func (h *AlertHandler) DismissAlert(c *gin.Context) {
	id, ok := parseID(c, "id", "alert")
	if !ok {
		return
	}

	if err := h.alertService.Dismiss(c.Request.Context(), id, actorFrom(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusOK, utils.StatusSuccess, "Alert dismissed successfully", nil)
}
