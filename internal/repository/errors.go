package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrNotFound is returned when an id- or name-addressed row does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a guarded update lost a race with another writer
	ErrConflict = errors.New("concurrent update conflict")
)

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support row locks.
// SQLite serializes writers on its own and rejects the clause.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
