package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation refers to an entry that does not exist.
var ErrNotFound = errors.New("entry not found")

// PersistenceError wraps a failure of the underlying database. It is not
// recoverable by re-prompting.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func persistErr(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}
