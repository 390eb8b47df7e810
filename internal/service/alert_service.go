package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"smart-hospital-display/internal/metrics"
	"smart-hospital-display/internal/models"
	"smart-hospital-display/internal/repository"
)

// alertHistoryLimit caps how many dismissed alerts the board shows
const alertHistoryLimit = 10

const defaultAlertCreator = "Staff"

// AlertSnapshot is the read model for the alert banner
type AlertSnapshot struct {
	ActiveAlerts []models.Alert `json:"active_alerts"`
	AlertHistory []models.Alert `json:"alert_history"`
}

type AlertService struct {
	alertRepo AlertStore
	auditRepo AuditStore
	now       func() time.Time
}

func NewAlertService(alertRepo AlertStore, auditRepo AuditStore) *AlertService {
	return &AlertService{
		alertRepo: alertRepo,
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// GetAlerts returns active alerts newest first and the recent dismissal history
func (s *AlertService) GetAlerts(ctx context.Context) (*AlertSnapshot, error) {
	active, err := s.alertRepo.GetActiveAlerts(ctx)
	if err != nil {
		return nil, storageError("load alerts", err)
	}

	history, err := s.alertRepo.GetAlertHistory(ctx, alertHistoryLimit)
	if err != nil {
		return nil, storageError("load alert history", err)
	}

	if active == nil {
		active = []models.Alert{}
	}
	if history == nil {
		history = []models.Alert{}
	}

	return &AlertSnapshot{ActiveAlerts: active, AlertHistory: history}, nil
}

// Create raises a new active alert
func (s *AlertService) Create(ctx context.Context, alertType, message, location, createdBy string) (*models.Alert, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, newValidationError("Message is required")
	}

	alertType = strings.TrimSpace(alertType)
	if alertType == "" {
		alertType = models.DefaultAlertType
	}
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		createdBy = defaultAlertCreator
	}

	alert := &models.Alert{
		AlertType: alertType,
		Message:   message,
		Location:  strings.TrimSpace(location),
		IsActive:  true,
		CreatedAt: s.now().UTC(),
		CreatedBy: createdBy,
	}
	if err := s.alertRepo.CreateAlert(ctx, alert); err != nil {
		return nil, storageError("create alert", err)
	}

	metrics.AlertsCreated.WithLabelValues(alertType).Inc()
	recordAudit(ctx, s.auditRepo, createdBy, "alert.create", "%s alert at %s: %s", alertType, alert.Location, message)

	return alert, nil
}

// Dismiss moves an active alert into the history.
// Unknown and already dismissed alerts both yield NotFoundError.
func (s *AlertService) Dismiss(ctx context.Context, id uint, actor string) error {
	if err := s.alertRepo.DismissAlert(ctx, id, s.now().UTC()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &NotFoundError{Resource: "Alert", Key: strconv.FormatUint(uint64(id), 10)}
		}
		return storageError("dismiss alert", err)
	}

	metrics.AlertsDismissed.Inc()
	recordAudit(ctx, s.auditRepo, actor, "alert.dismiss", "Dismissed alert %d", id)

	return nil
}
