package service

import (
	"errors"
	"fmt"
)

// ErrQueueEmpty signals that an advance found no waiting token
var ErrQueueEmpty = errors.New("no tokens in queue")

// ValidationError reports missing or malformed input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown id or name on an addressed operation
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// StorageError wraps an unexpected failure of the relational store.
// Any partial mutation has already been rolled back when it is returned.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
