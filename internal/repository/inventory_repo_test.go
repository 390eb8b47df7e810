package repository

import (
	"context"
	"testing"
	"time"

	"smart-hospital-display/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustQuantity(t *testing.T) {
	repo := NewInventoryRepo(newTestDB(t))
	ctx := context.Background()

	item := &models.InventoryItem{
		Name: "Gauze Bandages", Quantity: 10, Unit: "rolls", MaxCapacity: 300,
		Category: "Wound Care", ItemType: models.ItemTypeSupply,
	}
	require.NoError(t, repo.CreateItem(ctx, item))

	at := time.Now().UTC().Add(time.Minute)
	updated, err := repo.AdjustQuantity(ctx, "Gauze Bandages", func(current int) int { return current + 5 }, at)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.Quantity)

	stored, err := repo.GetItemByName(ctx, "Gauze Bandages")
	require.NoError(t, err)
	assert.Equal(t, 15, stored.Quantity)
	assert.True(t, stored.UpdatedAt.After(stored.CreatedAt))
}

func TestAdjustQuantity_UnknownItem(t *testing.T) {
	repo := NewInventoryRepo(newTestDB(t))

	_, err := repo.AdjustQuantity(context.Background(), "unknown-item", func(current int) int { return current }, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}
