package models

import "time"

// Token lifecycle states
const (
	TokenStatusWaiting    = "waiting"
	TokenStatusInProgress = "in_progress"
	TokenStatusCompleted  = "completed"
)

const DefaultPatientType = "General"

// Token represents the tokens table
// One row per patient ticket in a department's service line
type Token struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Department  string    `gorm:"size:100;not null;index:idx_tokens_department_status,priority:1" json:"department"`
	TokenNumber string    `gorm:"size:20;not null" json:"token_number"`
	PatientType string    `gorm:"size:50;default:'General'" json:"patient_type"`
	Status      string    `gorm:"size:20;not null;default:'waiting';index:idx_tokens_department_status,priority:2" json:"status"`
	IsCurrent   bool      `gorm:"not null;default:false;index" json:"is_current"`
	CreatedAt   time.Time `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name for Token model
func (Token) TableName() string {
	return "tokens"
}
