package handler

import (
	"net/http"

	"smart-hospital-display/internal/service"
	"smart-hospital-display/pkg/utils"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// AdjustRequest represents the request body for changing an item's quantity
type AdjustRequest struct {
	ItemName  string `json:"item_name" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
	Operation string `json:"operation" binding:"omitempty,oneof=set add subtract"`
}

// CreateItemRequest represents the request body for registering an item
type CreateItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Quantity     int    `json:"quantity" binding:"min=0"`
	Unit         string `json:"unit" binding:"required"`
	MinThreshold int    `json:"min_threshold" binding:"min=0"`
	MaxCapacity  *int   `json:"max_capacity"`
	Category     string `json:"category" binding:"required"`
	ItemType     string `json:"item_type" binding:"required,oneof=medication supply"`
	ExpiryDate   string `json:"expiry_date"`
}

// GetInventory returns medications and supplies keyed by item name
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	snapshot, err := h.inventoryService.GetInventory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"medications": snapshot.Medications,
		"supplies":    snapshot.Supplies,
	})
}

// Adjust sets, adds to or subtracts from an item's quantity
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var req AdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. item_name and quantity are required, operation must be 'set', 'add' or 'subtract'")
		return
	}

	item, err := h.inventoryService.Adjust(c.Request.Context(), req.ItemName, *req.Quantity, req.Operation, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusOK, utils.StatusSuccess, "Inventory updated successfully", gin.H{"item": item})
}

// CreateItem registers a new medication or supply
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request. name, unit, category and item_type (medication or supply) are required")
		return
	}

	item, err := h.inventoryService.CreateItem(c.Request.Context(), service.NewItemInput{
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		MaxCapacity:  req.MaxCapacity,
		Category:     req.Category,
		ItemType:     req.ItemType,
		ExpiryDate:   req.ExpiryDate,
	}, actorFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.MutationResponse(c, http.StatusCreated, utils.StatusSuccess, "Item created successfully", gin.H{"item": item})
}
