package repository

import (
	"context"

	"smart-hospital-display/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(ctx context.Context, actor, action, details string) error {
	entry := &models.AuditLog{
		Actor:   actor,
		Action:  action,
		Details: details,
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

// GetRecentAuditLogs retrieves the newest audit entries
func (r *AuditRepository) GetRecentAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
