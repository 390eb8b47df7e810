package repository

import (
	"path/filepath"
	"testing"

	"smart-hospital-display/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "display.db"), "silent")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
