package handler

import (
	"net/http"

	"smart-hospital-display/internal/service"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// GetSchedules returns OT and consultation schedules for ?date= (default today)
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	snapshot, err := h.scheduleService.GetSchedules(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"date":          snapshot.Date,
		"ot_schedules":  snapshot.OTSchedules,
		"consultations": snapshot.Consultations,
	})
}

// GetSchedule returns one schedule by id
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := parseID(c, "id", "schedule")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetSchedule(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, schedule)
}

// CreateSchedule persists a new OT or consultation schedule
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.ScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusCreated, utils.StatusSuccess, "Schedule created successfully", gin.H{"schedule": schedule})
}

// UpdateSchedule applies a partial update to an existing schedule
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseID(c, "id", "schedule")
	if !ok {
		return
	}

	var req service.ScheduleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	schedule, err := h.scheduleService.Update(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusOK, utils.StatusSuccess, "Schedule updated successfully", gin.H{"schedule": schedule})
}
