package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"smart-hospital-display/internal/service"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// StaffMemberHeader optionally names the person behind a staff action
const StaffMemberHeader = "X-Staff-Member"

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError
	var storageErr *service.StorageError

	switch {
	case errors.As(err, &validationErr):
		utils.ErrorResponse(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.ErrorResponse(c, http.StatusNotFound, notFoundErr.Error())
	case errors.As(err, &storageErr):
		log.Error().Err(storageErr.Err).
			Str("op", storageErr.Op).
			Str("request_id", c.GetString("request_id")).
			Msg("Storage operation failed")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to "+storageErr.Op)
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Msg("Unhandled error")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// actorFrom names who performed a staff action for the audit trail
func actorFrom(c *gin.Context) string {
	if member := strings.TrimSpace(c.GetHeader(StaffMemberHeader)); member != "" {
		return member
	}
	return c.ClientIP()
}

func parseID(c *gin.Context, param, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+resource+" ID")
		return 0, false
	}
	return uint(id), true
}
