package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets an item that is not on
// the active list.
var ErrNotFound = errors.New("item not found")

// ErrDuplicate is returned when adding an item whose name (case-insensitive)
// is already on the active list.
var ErrDuplicate = errors.New("item already on the list")

// ValidationError reports a missing required field on a write operation.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
