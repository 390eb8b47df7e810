package models

import "time"

const DefaultAlertType = "general"

// Alert represents the alerts table
// Dismissed alerts stay in the table as history
type Alert struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	AlertType   string     `gorm:"column:alert_type;size:50;not null" json:"type"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Location    string     `gorm:"size:200" json:"location"`
	IsActive    bool       `gorm:"not null;index" json:"active"`
	CreatedAt   time.Time  `gorm:"index" json:"created_at"`
	DismissedAt *time.Time `gorm:"index" json:"dismissed_at"`
	CreatedBy   string     `gorm:"size:100" json:"created_by"`
}

// TableName specifies the table name for Alert model
func (Alert) TableName() string {
	return "alerts"
}
