package service

import (
	"context"
	"time"

	"smart-hospital-display/internal/models"
)

// TokenStore is the storage the token queue needs
type TokenStore interface {
	GetCurrentTokens(ctx context.Context, department string) ([]models.Token, error)
	GetWaitingTokens(ctx context.Context, department string) ([]models.Token, error)
	CreateToken(ctx context.Context, token *models.Token) error
	AdvanceQueue(ctx context.Context, department string) (*models.Token, error)
}

type InventoryStore interface {
	GetAllItems(ctx context.Context) ([]models.InventoryItem, error)
	GetItemByName(ctx context.Context, name string) (*models.InventoryItem, error)
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	AdjustQuantity(ctx context.Context, name string, apply func(current int) int, at time.Time) (*models.InventoryItem, error)
}

type AlertStore interface {
	GetActiveAlerts(ctx context.Context) ([]models.Alert, error)
	GetAlertHistory(ctx context.Context, limit int) ([]models.Alert, error)
	CreateAlert(ctx context.Context, alert *models.Alert) error
	DismissAlert(ctx context.Context, id uint, at time.Time) error
}

type ScheduleStore interface {
	GetSchedulesByDate(ctx context.Context, date string) ([]models.Schedule, error)
	GetScheduleByID(ctx context.Context, id uint) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	UpdateSchedule(ctx context.Context, id uint, mutate func(*models.Schedule) error) (*models.Schedule, error)
}

type AuditStore interface {
	CreateAuditLog(ctx context.Context, actor, action, details string) error
	GetRecentAuditLogs(ctx context.Context, limit int) ([]models.AuditLog, error)
}
