package repository

import (
	"context"
	"time"

	"smart-hospital-display/internal/models"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepo(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

// GetActiveAlerts retrieves active alerts, newest first
func (r *AlertRepository) GetActiveAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&alerts).Error
	return alerts, err
}

// GetAlertHistory retrieves up to limit dismissed alerts, most recently dismissed first
func (r *AlertRepository) GetAlertHistory(ctx context.Context, limit int) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.WithContext(ctx).
		Where("is_active = ?", false).
		Order("dismissed_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}

// CreateAlert creates a new alert
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// DismissAlert deactivates an active alert.
// Returns ErrNotFound when the id is unknown or the alert was already dismissed.
func (r *AlertRepository) DismissAlert(ctx context.Context, id uint, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Alert{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":    false,
			"dismissed_at": at,
		})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
