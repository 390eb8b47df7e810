package repository

import (
	"context"
	"time"

	"smart-hospital-display/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// GetAllItems retrieves every inventory item ordered by name
func (r *InventoryRepository) GetAllItems(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// GetItemByName retrieves an inventory item by its unique name
func (r *InventoryRepository) GetItemByName(ctx context.Context, name string) (*models.InventoryItem, error) {
	var item models.InventoryItem
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&item).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &item, nil
}

// CreateItem creates a new inventory item
func (r *InventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// AdjustQuantity locks the named item, replaces its quantity with apply(current)
// and stamps updated_at, all in one transaction
func (r *InventoryRepository) AdjustQuantity(ctx context.Context, name string, apply func(current int) int, at time.Time) (*models.InventoryItem, error) {
	var item models.InventoryItem

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("name = ?", name).First(&item).Error; err != nil {
			return translateNotFound(err)
		}

		quantity := apply(item.Quantity)
		if err := tx.Model(&models.InventoryItem{}).
			Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"quantity":   quantity,
				"updated_at": at,
			}).Error; err != nil {
			return err
		}

		item.Quantity = quantity
		item.UpdatedAt = at
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
