package service

import (
	"context"
	"fmt"
	"testing"

	"smart-hospital-display/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertService_CreateDefaults(t *testing.T) {
	svc := newTestAlertService(t)

	alert, err := svc.Create(context.Background(), "", "Lift 2 out of service", "Block B", "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAlertType, alert.AlertType)
	assert.Equal(t, "Staff", alert.CreatedBy)
	assert.True(t, alert.IsActive)
	assert.Nil(t, alert.DismissedAt)
}

func TestAlertService_CreateRequiresMessage(t *testing.T) {
	svc := newTestAlertService(t)

	_, err := svc.Create(context.Background(), "fire", "   ", "Ward 3", "Staff")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAlertService_DoubleDismiss(t *testing.T) {
	svc := newTestAlertService(t)
	ctx := context.Background()

	alert, err := svc.Create(ctx, "code_blue", "Code blue in ICU", "ICU", "Staff")
	require.NoError(t, err)

	require.NoError(t, svc.Dismiss(ctx, alert.ID, "nurse"))

	err = svc.Dismiss(ctx, alert.ID, "nurse")
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAlertService_HistoryIsCappedAndOrdered(t *testing.T) {
	svc := newTestAlertService(t)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 12; i++ {
		alert, err := svc.Create(ctx, "", fmt.Sprintf("notice %d", i), "Lobby", "")
		require.NoError(t, err)
		ids = append(ids, alert.ID)
	}
	for _, id := range ids {
		require.NoError(t, svc.Dismiss(ctx, id, "nurse"))
	}

	snapshot, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot.ActiveAlerts)
	require.Len(t, snapshot.AlertHistory, alertHistoryLimit)

	// last dismissed first
	assert.Equal(t, ids[11], snapshot.AlertHistory[0].ID)
	for i := 1; i < len(snapshot.AlertHistory); i++ {
		prev := snapshot.AlertHistory[i-1].DismissedAt
		cur := snapshot.AlertHistory[i].DismissedAt
		require.NotNil(t, prev)
		require.NotNil(t, cur)
		assert.False(t, cur.After(*prev))
	}
}

func TestAlertService_ActiveNewestFirst(t *testing.T) {
	svc := newTestAlertService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "", "first", "", "")
	require.NoError(t, err)
	second, err := svc.Create(ctx, "", "second", "", "")
	require.NoError(t, err)

	snapshot, err := svc.GetAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.ActiveAlerts, 2)
	assert.Equal(t, second.ID, snapshot.ActiveAlerts[0].ID)
	assert.Equal(t, first.ID, snapshot.ActiveAlerts[1].ID)
	assert.NotNil(t, snapshot.AlertHistory)
}
