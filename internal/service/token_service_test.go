package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"smart-hospital-display/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_FIFO(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	for _, number := range []string{"T1", "T2", "T3"} {
		_, err := svc.Enqueue(ctx, "general", number, "", "nurse")
		require.NoError(t, err)
	}

	for _, want := range []string{"T1", "T2", "T3"} {
		token, err := svc.Advance(ctx, "general", "nurse")
		require.NoError(t, err)
		assert.Equal(t, want, token.TokenNumber)

		snapshot, err := svc.GetQueue(ctx, "general")
		require.NoError(t, err)
		assert.Equal(t, want, snapshot.CurrentTokens["general"])
	}
}

func TestTokenService_EnqueueDefaults(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Enqueue(context.Background(), " general ", " G016 ", "", "nurse")
	require.NoError(t, err)
	assert.Equal(t, "general", token.Department)
	assert.Equal(t, "G016", token.TokenNumber)
	assert.Equal(t, models.DefaultPatientType, token.PatientType)
	assert.Equal(t, models.TokenStatusWaiting, token.Status)
	assert.False(t, token.IsCurrent)
}

func TestTokenService_EnqueueValidation(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	var validationErr *ValidationError

	_, err := svc.Enqueue(ctx, "", "G1", "", "nurse")
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Enqueue(ctx, "general", "  ", "", "nurse")
	assert.ErrorAs(t, err, &validationErr)

	_, err = svc.Advance(ctx, " ", "nurse")
	assert.ErrorAs(t, err, &validationErr)
}

func TestTokenService_AdvanceEmptyQueueClearsCurrent(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, "cardiology", "C008", "Follow-up", "nurse")
	require.NoError(t, err)
	_, err = svc.Advance(ctx, "cardiology", "nurse")
	require.NoError(t, err)

	_, err = svc.Advance(ctx, "cardiology", "nurse")
	assert.ErrorIs(t, err, ErrQueueEmpty)

	snapshot, err := svc.GetQueue(ctx, "cardiology")
	require.NoError(t, err)
	assert.NotContains(t, snapshot.CurrentTokens, "cardiology")
	assert.Empty(t, snapshot.Queue["cardiology"])
}

func TestTokenService_GetQueueFiltersDepartment(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	_, err := svc.Enqueue(ctx, "general", "G1", "", "nurse")
	require.NoError(t, err)
	_, err = svc.Enqueue(ctx, "pediatrics", "P1", "Vaccination", "nurse")
	require.NoError(t, err)

	all, err := svc.GetQueue(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all.Queue, 2)

	filtered, err := svc.GetQueue(ctx, "pediatrics")
	require.NoError(t, err)
	require.Len(t, filtered.Queue, 1)
	assert.Equal(t, "P1", filtered.Queue["pediatrics"][0].TokenNumber)
}

func TestTokenService_ConcurrentAdvance(t *testing.T) {
	svc := newTestTokenService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.Enqueue(ctx, "orthopedics", fmt.Sprintf("O%03d", i), "", "nurse")
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	results := make(chan error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Advance(ctx, "orthopedics", "nurse")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	for err := range results {
		require.NoError(t, err)
	}

	current, err := svc.tokenRepo.GetCurrentTokens(ctx, "orthopedics")
	require.NoError(t, err)
	require.Len(t, current, 1)
	assert.Equal(t, "O003", current[0].TokenNumber)

	snapshot, err := svc.GetQueue(ctx, "orthopedics")
	require.NoError(t, err)
	assert.Len(t, snapshot.Queue["orthopedics"], 2)
}
