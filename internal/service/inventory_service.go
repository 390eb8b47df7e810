package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"smart-hospital-display/internal/metrics"
	"smart-hospital-display/internal/models"
	"smart-hospital-display/internal/repository"
)

// Adjustment operations
const (
	OperationSet      = "set"
	OperationAdd      = "add"
	OperationSubtract = "subtract"
)

// Stock levels derived on the read side
const (
	StockCritical = "critical"
	StockLow      = "low"
	StockNormal   = "normal"
)

// lowStockRatio is the fill ratio below which an item counts as low
const lowStockRatio = 0.3

// InventoryItemView is an item as shown on the dashboard
type InventoryItemView struct {
	models.InventoryItem
	ExpiryDate *string `json:"expiry_date"`
	StockLevel string  `json:"stock_level"`
}

// InventorySnapshot groups items by kind, keyed by item name
type InventorySnapshot struct {
	Medications map[string]InventoryItemView `json:"medications"`
	Supplies    map[string]InventoryItemView `json:"supplies"`
}

// NewItemInput carries the fields accepted when registering an item
type NewItemInput struct {
	Name         string
	Quantity     int
	Unit         string
	MinThreshold int
	MaxCapacity  *int
	Category     string
	ItemType     string
	ExpiryDate   string
}

type InventoryService struct {
	inventoryRepo InventoryStore
	auditRepo     AuditStore
	now           func() time.Time
}

func NewInventoryService(inventoryRepo InventoryStore, auditRepo AuditStore) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		auditRepo:     auditRepo,
		now:           time.Now,
	}
}

// GetInventory returns every item grouped into medications and supplies
func (s *InventoryService) GetInventory(ctx context.Context) (*InventorySnapshot, error) {
	items, err := s.inventoryRepo.GetAllItems(ctx)
	if err != nil {
		return nil, storageError("load inventory", err)
	}

	snapshot := &InventorySnapshot{
		Medications: make(map[string]InventoryItemView),
		Supplies:    make(map[string]InventoryItemView),
	}
	for _, item := range items {
		view := newItemView(item)
		if item.ItemType == models.ItemTypeMedication {
			snapshot.Medications[item.Name] = view
		} else {
			snapshot.Supplies[item.Name] = view
		}
	}

	return snapshot, nil
}

// Adjust changes an item's quantity. An empty operation means set.
// Subtraction never drives the quantity below zero.
func (s *InventoryService) Adjust(ctx context.Context, name string, quantity int, operation, actor string) (*InventoryItemView, error) {
	name = strings.TrimSpace(name)
	operation = strings.ToLower(strings.TrimSpace(operation))
	if operation == "" {
		operation = OperationSet
	}

	if name == "" {
		return nil, newValidationError("Item name is required")
	}
	if quantity < 0 {
		return nil, newValidationError("Quantity must not be negative")
	}

	var apply func(current int) int
	switch operation {
	case OperationSet:
		apply = func(int) int { return quantity }
	case OperationAdd:
		apply = func(current int) int { return current + quantity }
	case OperationSubtract:
		apply = func(current int) int {
			if current-quantity < 0 {
				return 0
			}
			return current - quantity
		}
	default:
		return nil, newValidationError("Unknown operation %q (want set, add or subtract)", operation)
	}

	item, err := s.inventoryRepo.AdjustQuantity(ctx, name, apply, s.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &NotFoundError{Resource: "Item", Key: name}
		}
		return nil, storageError("update inventory", err)
	}

	metrics.InventoryAdjustments.WithLabelValues(operation).Inc()
	recordAudit(ctx, s.auditRepo, actor, "inventory.adjust", "%s %d %s, now %d", operation, quantity, name, item.Quantity)

	view := newItemView(*item)
	return &view, nil
}

// CreateItem registers a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, input NewItemInput, actor string) (*InventoryItemView, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.ItemType = strings.ToLower(strings.TrimSpace(input.ItemType))

	if input.Name == "" || strings.TrimSpace(input.Unit) == "" || strings.TrimSpace(input.Category) == "" {
		return nil, newValidationError("Name, unit and category are required")
	}
	if input.ItemType != models.ItemTypeMedication && input.ItemType != models.ItemTypeSupply {
		return nil, newValidationError("Item type must be medication or supply")
	}
	if input.Quantity < 0 || input.MinThreshold < 0 {
		return nil, newValidationError("Quantity and minimum threshold must not be negative")
	}

	maxCapacity := 100
	if input.MaxCapacity != nil {
		if *input.MaxCapacity <= 0 {
			return nil, newValidationError("Maximum capacity must be positive")
		}
		maxCapacity = *input.MaxCapacity
	}

	var expiry *time.Time
	if input.ExpiryDate != "" {
		parsed, err := time.Parse(models.DateLayout, input.ExpiryDate)
		if err != nil {
			return nil, newValidationError("Expiry date must be YYYY-MM-DD")
		}
		expiry = &parsed
	}

	_, err := s.inventoryRepo.GetItemByName(ctx, input.Name)
	if err == nil {
		return nil, newValidationError("Item %q already exists", input.Name)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, storageError("create inventory item", err)
	}

	now := s.now().UTC()
	item := &models.InventoryItem{
		Name:         input.Name,
		Quantity:     input.Quantity,
		Unit:         strings.TrimSpace(input.Unit),
		MinThreshold: input.MinThreshold,
		MaxCapacity:  maxCapacity,
		Category:     strings.TrimSpace(input.Category),
		ItemType:     input.ItemType,
		ExpiryDate:   expiry,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.inventoryRepo.CreateItem(ctx, item); err != nil {
		return nil, storageError("create inventory item", err)
	}

	recordAudit(ctx, s.auditRepo, actor, "inventory.create", "Registered %s (%s)", item.Name, item.ItemType)

	view := newItemView(*item)
	return &view, nil
}

func newItemView(item models.InventoryItem) InventoryItemView {
	view := InventoryItemView{
		InventoryItem: item,
		StockLevel:    stockLevel(item),
	}
	if item.ExpiryDate != nil {
		formatted := item.ExpiryDate.Format(models.DateLayout)
		view.ExpiryDate = &formatted
	}
	return view
}

func stockLevel(item models.InventoryItem) string {
	if item.Quantity <= item.MinThreshold {
		return StockCritical
	}
	if item.MaxCapacity > 0 && float64(item.Quantity)/float64(item.MaxCapacity) < lowStockRatio {
		return StockLow
	}
	return StockNormal
}
