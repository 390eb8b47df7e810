package service

import (
	"context"
	"fmt"

	"smart-hospital-display/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

type AuditService struct {
	auditRepo AuditStore
}

func NewAuditService(auditRepo AuditStore) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// GetRecent returns the newest audit entries; limit <= 0 means the default page size
func (s *AuditService) GetRecent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	if limit > maxAuditLimit {
		limit = maxAuditLimit
	}

	logs, err := s.auditRepo.GetRecentAuditLogs(ctx, limit)
	if err != nil {
		return nil, storageError("load audit log", err)
	}
	return logs, nil
}

// recordAudit writes an audit row without failing the caller's mutation
func recordAudit(ctx context.Context, store AuditStore, actor, action, format string, args ...interface{}) {
	if store == nil {
		return
	}
	details := fmt.Sprintf(format, args...)
	if err := store.CreateAuditLog(ctx, actor, action, details); err != nil {
		log.Warn().Err(err).Str("action", action).Msg("Failed to write audit log")
	}
}
