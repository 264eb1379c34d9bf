package store

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrNotFound is returned when the requested row does not exist
	ErrNotFound = errors.New("entry not found")

	// ErrStoreClosed is returned when trying to use a closed store
	ErrStoreClosed = errors.New("store is closed")

	// ErrEmptyName is returned when a required name field is empty
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrUnknownRoots is returned when a field composition references
	// word roots that do not exist
	ErrUnknownRoots = errors.New("composition references unknown word roots")
)

// StoreError wraps errors with operation context
type StoreError struct {
	Op  string // Operation name
	Err error  // Underlying error
}

// Error implements the error interface
func (e *StoreError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("vocabstore: %v", e.Err)
	}
	return fmt.Sprintf("vocabstore: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target
func (e *StoreError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// wrapError wraps an error with operation context
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
