package rop

import (
	"time"

	"github.com/google/uuid"
)

// Identified is implemented by results that carry an identity.
type Identified interface {
	// Id is shared by a failure and every failure propagated from it
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

type ValueProvider[T any] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Get returns the successful value, panics on failure
	Get() T
}

// WithCause defines an interface for types that hold a value or a cause
type WithCause[T any] interface {
	ValueProvider[T]
	Identified
	// Cause returns the failure cause, panics on success
	Cause() error
	// Unwrap returns the value or the cause without panicking
	Unwrap() (T, error)
}
