package repository

import (
	"context"
	"errors"

	"smart-hospital-display/internal/models"

	"gorm.io/gorm"
)

// maxAdvanceAttempts bounds how often a conflicted advance transaction is re-run
const maxAdvanceAttempts = 3

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepo(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// GetCurrentTokens returns the tokens being served, optionally limited to one department
func (r *TokenRepository) GetCurrentTokens(ctx context.Context, department string) ([]models.Token, error) {
	var tokens []models.Token
	query := r.db.WithContext(ctx).Where("is_current = ?", true)
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Order("department ASC").Find(&tokens).Error
	return tokens, err
}

// GetWaitingTokens returns the queue in FIFO order, optionally limited to one department
func (r *TokenRepository) GetWaitingTokens(ctx context.Context, department string) ([]models.Token, error) {
	var tokens []models.Token
	query := r.db.WithContext(ctx).
		Where("status = ? AND is_current = ?", models.TokenStatusWaiting, false)
	if department != "" {
		query = query.Where("department = ?", department)
	}
	err := query.Order("created_at ASC").Order("id ASC").Find(&tokens).Error
	return tokens, err
}

// CreateToken inserts a new token
func (r *TokenRepository) CreateToken(ctx context.Context, token *models.Token) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// AdvanceQueue completes the department's current token and promotes the oldest waiting one.
// Returns (nil, nil) when nothing is waiting; the previous current token is still completed.
func (r *TokenRepository) AdvanceQueue(ctx context.Context, department string) (*models.Token, error) {
	return retryOnConflict(maxAdvanceAttempts, func() (*models.Token, error) {
		return r.advanceOnce(ctx, department)
	})
}

// retryOnConflict re-runs fn while it reports ErrConflict, at most attempts times
func retryOnConflict(attempts int, fn func() (*models.Token, error)) (*models.Token, error) {
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		var next *models.Token
		next, err = fn()
		if !errors.Is(err, ErrConflict) {
			return next, err
		}
	}
	return nil, err
}

func (r *TokenRepository) advanceOnce(ctx context.Context, department string) (*models.Token, error) {
	var next *models.Token

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []models.Token
		if err := lockForUpdate(tx).
			Where("department = ? AND is_current = ?", department, true).
			Find(&current).Error; err != nil {
			return err
		}

		if len(current) > 0 {
			ids := make([]uint, len(current))
			for i, token := range current {
				ids[i] = token.ID
			}
			if err := tx.Model(&models.Token{}).
				Where("id IN ?", ids).
				Updates(map[string]interface{}{
					"is_current": false,
					"status":     models.TokenStatusCompleted,
				}).Error; err != nil {
				return err
			}
		}

		var candidate models.Token
		err := lockForUpdate(tx).
			Where("department = ? AND status = ? AND is_current = ?", department, models.TokenStatusWaiting, false).
			Order("created_at ASC").
			Order("id ASC").
			First(&candidate).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		// Compare-and-set: only a token that is still waiting may become current
		result := tx.Model(&models.Token{}).
			Where("id = ? AND status = ? AND is_current = ?", candidate.ID, models.TokenStatusWaiting, false).
			Updates(map[string]interface{}{
				"is_current": true,
				"status":     models.TokenStatusInProgress,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return ErrConflict
		}

		// A concurrent advance may have committed its own current token after the lookup above
		var currentCount int64
		if err := tx.Model(&models.Token{}).
			Where("department = ? AND is_current = ?", department, true).
			Count(&currentCount).Error; err != nil {
			return err
		}
		if currentCount != 1 {
			return ErrConflict
		}

		if err := tx.First(&candidate, candidate.ID).Error; err != nil {
			return err
		}
		next = &candidate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return next, nil
}
