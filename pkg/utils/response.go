package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Mutation outcomes reported in the "status" field
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusError   = "error"
)

// SuccessResponse sends a read response; map payloads are stamped with last_updated
func SuccessResponse(c *gin.Context, data interface{}) {
	if fields, ok := data.(gin.H); ok {
		fields["last_updated"] = time.Now().UTC().Format(time.RFC3339)
		data = fields
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// MutationResponse sends the outcome of a staff action
func MutationResponse(c *gin.Context, statusCode int, status, message string, data interface{}) {
	body := gin.H{
		"success": true,
		"status":  status,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(statusCode, body)
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"status":  StatusError,
		"error":   message,
	})
}
