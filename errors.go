package jenkins

import (
	"errors"
	"fmt"
)

var (
	// ErrFinalized is returned when a stream is used after Finalize.
	ErrFinalized = errors.New("stream is finalized")
)

// StateError indicates a stream operation in the wrong lifecycle state.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type StateError struct {
	Op    string
	cause error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s on finalized stream", e.Op)
}

func (e *StateError) Unwrap() error { return e.cause }

func errFinalized(op string) error {
	return &StateError{Op: op, cause: ErrFinalized}
}
