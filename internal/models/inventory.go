package models

import "time"

// Inventory item kinds
const (
	ItemTypeMedication = "medication"
	ItemTypeSupply     = "supply"
)

// InventoryItem represents the inventory_items table
// Pharmacy stock and ward supplies, addressed by their unique name
type InventoryItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Quantity     int        `gorm:"not null;default:0" json:"quantity"`
	Unit         string     `gorm:"size:50;not null" json:"unit"`
	MinThreshold int        `gorm:"default:0" json:"min_threshold"`
	MaxCapacity  int        `gorm:"default:100" json:"max_capacity"`
	Category     string     `gorm:"size:100;not null" json:"category"`
	ItemType     string     `gorm:"size:50;not null;index" json:"item_type"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TableName specifies the table name for InventoryItem model
func (InventoryItem) TableName() string {
	return "inventory_items"
}
