package service

import (
	"context"
	"strings"
	"time"

	"smart-hospital-display/internal/metrics"
	"smart-hospital-display/internal/models"
)

// QueueSnapshot is the read model for the token board
type QueueSnapshot struct {
	CurrentTokens map[string]string         `json:"current_tokens"`
	Queue         map[string][]models.Token `json:"queue"`
}

type TokenService struct {
	tokenRepo TokenStore
	auditRepo AuditStore
	now       func() time.Time
}

func NewTokenService(tokenRepo TokenStore, auditRepo AuditStore) *TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// GetQueue returns the current token and the waiting line per department.
// An empty department returns every department.
func (s *TokenService) GetQueue(ctx context.Context, department string) (*QueueSnapshot, error) {
	department = strings.TrimSpace(department)

	current, err := s.tokenRepo.GetCurrentTokens(ctx, department)
	if err != nil {
		return nil, storageError("load current tokens", err)
	}

	waiting, err := s.tokenRepo.GetWaitingTokens(ctx, department)
	if err != nil {
		return nil, storageError("load token queue", err)
	}

	snapshot := &QueueSnapshot{
		CurrentTokens: make(map[string]string, len(current)),
		Queue:         make(map[string][]models.Token),
	}
	for _, token := range current {
		snapshot.CurrentTokens[token.Department] = token.TokenNumber
	}
	for _, token := range waiting {
		snapshot.Queue[token.Department] = append(snapshot.Queue[token.Department], token)
	}

	return snapshot, nil
}

// Enqueue appends a waiting token to a department's queue
func (s *TokenService) Enqueue(ctx context.Context, department, tokenNumber, patientType, actor string) (*models.Token, error) {
	department = strings.TrimSpace(department)
	tokenNumber = strings.TrimSpace(tokenNumber)
	patientType = strings.TrimSpace(patientType)

	if department == "" || tokenNumber == "" {
		return nil, newValidationError("Department and token number are required")
	}
	if len(tokenNumber) > 20 {
		return nil, newValidationError("Token number must be at most 20 characters")
	}
	if patientType == "" {
		patientType = models.DefaultPatientType
	}

	now := s.now().UTC()
	token := &models.Token{
		Department:  department,
		TokenNumber: tokenNumber,
		PatientType: patientType,
		Status:      models.TokenStatusWaiting,
		IsCurrent:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tokenRepo.CreateToken(ctx, token); err != nil {
		return nil, storageError("add token", err)
	}

	metrics.TokensEnqueued.WithLabelValues(department).Inc()
	recordAudit(ctx, s.auditRepo, actor, "token.enqueue", "Added token %s to %s", tokenNumber, department)

	return token, nil
}

// Advance completes the department's current token and calls the next waiting one.
// Returns ErrQueueEmpty when nothing is waiting; the previous token is completed regardless.
func (s *TokenService) Advance(ctx context.Context, department, actor string) (*models.Token, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, newValidationError("Department is required")
	}

	next, err := s.tokenRepo.AdvanceQueue(ctx, department)
	if err != nil {
		return nil, storageError("advance queue", err)
	}

	if next == nil {
		metrics.QueueAdvances.WithLabelValues(department, "empty").Inc()
		recordAudit(ctx, s.auditRepo, actor, "token.advance", "Queue empty for %s", department)
		return nil, ErrQueueEmpty
	}

	metrics.QueueAdvances.WithLabelValues(department, "advanced").Inc()
	recordAudit(ctx, s.auditRepo, actor, "token.advance", "Now serving %s in %s", next.TokenNumber, department)

	return next, nil
}
