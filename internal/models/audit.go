package models

import "time"

// AuditLog represents the audit_logs table
// Every staff mutation leaves one row here
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:100;index" json:"actor"`
	Action    string    `gorm:"size:100;not null;index" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
