package sortlist

import (
	"errors"
	"fmt"
)

// Recoverable failure kinds. The coordinator records a warning history entry
// for each of these and leaves the collection unmutated; callers match them
// with errors.Is and carry on.
var (
	// ErrOutOfRange reports an index outside [0, len).
	ErrOutOfRange = errors.New("index out of range")

	// ErrDuplicateID reports an insert whose id already exists in the collection.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrNotFound reports a remove whose target does not exist. This is a
	// normal negative outcome, not a fault.
	ErrNotFound = errors.New("entity not found")

	// ErrReferenceStale reports an id that no longer resolves to any entity,
	// typically because the entity was deleted after the id was observed.
	ErrReferenceStale = errors.New("stale reference")
)

// InvalidRequestError indicates the gesture layer produced a malformed
// request (a zero reference, a mode mismatch). Unlike the
// sentinel errors above this is a contract violation between layers, so it
// is not recorded in the history log and should surface loudly.
type InvalidRequestError struct {
	Op     string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *InvalidRequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s request: %s: %v", e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s request: %s", e.Op, e.Reason)
}

// Unwrap allows error unwrapping.
func (e *InvalidRequestError) Unwrap() error {
	return e.Err
}
