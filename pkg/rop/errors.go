package rop

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState matches every *InvalidStateError via errors.Is.
	ErrInvalidState = errors.New("rop: invalid state")
	// ErrEmpty is the cause held by the zero Result.
	ErrEmpty = errors.New("rop: empty result")
)

// InvalidStateError reports misuse of the API, such as calling Get on a
// failure. It is raised with panic and is never turned into a failure by
// Guard or any operator built on it.
type InvalidStateError struct {
	Op      string
	Message string
	// Cause is the failure's cause when Get was called on a failure.
	Cause error
}

func invalidState(op, msg string, cause error) *InvalidStateError {
	return &InvalidStateError{Op: op, Message: msg, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("rop: %s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("rop: %s: %s: %v", e.Op, e.Message, e.Cause)
}

func (e *InvalidStateError) Unwrap() error {
	return e.Cause
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// PanicError is the cause recorded when a guarded function panics with a
// value that is not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("rop: panic: %v", e.Value)
}
