package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrCorruptFeatures marks a persisted feature list that no longer decodes.
	ErrCorruptFeatures = errors.New("corrupt feature list")
)

// ValidationError carries a message that is safe to show to the caller as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Invalid builds a ValidationError.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// PersistenceError wraps a failure of the underlying store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *PersistenceError) Unwrap() error { return e.Err }
