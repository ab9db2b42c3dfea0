package record

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record with the requested ID exists.
// It is a normal outcome, not a system fault.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a rejected input field. The caller can always
// recover by correcting the input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// PersistenceError reports a failure writing the on-disk mirror. The
// in-memory state already committed and stays correct for subsequent
// operations; the next successful mutation rewrites the full file.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist ledger: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
