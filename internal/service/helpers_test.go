package service

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"smart-hospital-display/internal/database"
	"smart-hospital-display/internal/repository"

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

// steppingClock returns a clock that moves forward one second per call
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}

var testEpoch = time.Date(2026, 4, 14, 8, 0, 0, 0, time.UTC)

func newTestTokenService(t *testing.T) *TokenService {
	db := newTestDB(t)
	svc := NewTokenService(repository.NewTokenRepo(db), repository.NewAuditRepo(db))
	svc.now = steppingClock(testEpoch)
	return svc
}

func newTestInventoryService(t *testing.T) *InventoryService {
	db := newTestDB(t)
	svc := NewInventoryService(repository.NewInventoryRepo(db), repository.NewAuditRepo(db))
	svc.now = steppingClock(testEpoch)
	return svc
}

func newTestAlertService(t *testing.T) *AlertService {
	db := newTestDB(t)
	svc := NewAlertService(repository.NewAlertRepo(db), repository.NewAuditRepo(db))
	svc.now = steppingClock(testEpoch)
	return svc
}

func newTestScheduleService(t *testing.T) *ScheduleService {
	db := newTestDB(t)
	svc := NewScheduleService(repository.NewScheduleRepo(db), repository.NewAuditRepo(db))
	svc.now = steppingClock(testEpoch)
	return svc
}
