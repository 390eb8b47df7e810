package handler

import (
	"errors"
	"fmt"
	"net/http"

	"smart-hospital-display/internal/service"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
)

type TokenHandler struct {
	tokenService *service.TokenService
}

func NewTokenHandler(tokenService *service.TokenService) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
	}
}

// EnqueueRequest represents the request body for adding a token
type EnqueueRequest struct {
	Department  string `json:"department" binding:"required"`
	TokenNumber string `json:"token_number" binding:"required"`
	PatientType string `json:"patient_type"`
}

// GetTokens returns the current token and waiting queue per department
func (h *TokenHandler) GetTokens(c *gin.Context) {
	snapshot, err := h.tokenService.GetQueue(c.Request.Context(), c.Query("department"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"current_tokens": snapshot.CurrentTokens,
		"queue":          snapshot.Queue,
	})
}

// Enqueue adds a waiting token to a department queue
func (h *TokenHandler) Enqueue(c *gin.Context) {
	var req EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Department and token number are required")
		return
	}

	token, err := h.tokenService.Enqueue(c.Request.Context(), req.Department, req.TokenNumber, req.PatientType, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusCreated, utils.StatusSuccess, "Token added successfully", gin.H{"token": token})
}

// Advance calls the next waiting token of a department
func (h *TokenHandler) Advance(c *gin.Context) {
	token, err := h.tokenService.Advance(c.Request.Context(), c.Param("department"), actorFrom(c))
	if errors.Is(err, service.ErrQueueEmpty) {
		utils.MutationResponse(c, http.StatusOK, utils.StatusInfo, "No tokens in queue", nil)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusOK, utils.StatusSuccess,
		fmt.Sprintf("Advanced to token %s", token.TokenNumber), gin.H{"token": token})
}
