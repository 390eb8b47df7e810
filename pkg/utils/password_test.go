package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyHashing(t *testing.T) {
	hash, err := HashAPIKey("staff-panel-key")
	require.NoError(t, err)
	assert.NotEqual(t, "staff-panel-key", hash)

	assert.True(t, CompareAPIKey(hash, "staff-panel-key"))
	assert.False(t, CompareAPIKey(hash, "staff-panel-key "))
	assert.False(t, CompareAPIKey("not-a-hash", "staff-panel-key"))
}
