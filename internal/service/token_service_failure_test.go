package service

import (
	"context"
	"errors"
	"testing"

	"smart-hospital-display/internal/models"
	"smart-hospital-display/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingTokenStore returns err from every call
type failingTokenStore struct {
	err error
}

func (s *failingTokenStore) GetCurrentTokens(context.Context, string) ([]models.Token, error) {
	return nil, s.err
}

func (s *failingTokenStore) GetWaitingTokens(context.Context, string) ([]models.Token, error) {
	return nil, s.err
}

func (s *failingTokenStore) CreateToken(context.Context, *models.Token) error {
	return s.err
}

func (s *failingTokenStore) AdvanceQueue(context.Context, string) (*models.Token, error) {
	return nil, s.err
}

func TestTokenService_ExhaustedConflictIsStorageError(t *testing.T) {
	svc := NewTokenService(&failingTokenStore{err: repository.ErrConflict}, nil)

	_, err := svc.Advance(context.Background(), "general", "nurse")

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "advance queue", storageErr.Op)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.False(t, errors.Is(err, ErrQueueEmpty))
}

func TestTokenService_StorageFailures(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewTokenService(&failingTokenStore{err: boom}, nil)
	ctx := context.Background()

	var storageErr *StorageError

	_, err := svc.GetQueue(ctx, "")
	require.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, boom)

	_, err = svc.Enqueue(ctx, "general", "G1", "", "nurse")
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "add token", storageErr.Op)
}
