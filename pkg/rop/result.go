package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// failure is the cause-only variant. It does not depend on the value type,
// so the same record is shared by every Result it propagates through.
type failure struct {
	id        uuid.UUID
	createdAt time.Time
	cause     error
}

// emptyFailure backs the zero value of Result.
var emptyFailure = &failure{cause: ErrEmpty}

// Result holds either a value (success) or a cause (failure), never both.
// It is immutable; the zero value is a failure with cause ErrEmpty.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	fail      *failure
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
		isSuccess: true,
	}
}

// Fail wraps err verbatim. A nil err is a misuse and panics with an
// *InvalidStateError.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		panic(invalidState("Fail", "a failure requires a non-nil cause", nil))
	}
	return Result[T]{
		fail: &failure{
			id:        uuid.New(),
			createdAt: time.Now().UTC(),
			cause:     err,
		},
	}
}

// FailFrom retypes a failure. from must be a failure.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic(invalidState("FailFrom", "cannot retype a success as a failure", nil))
	}
	return Result[Out]{fail: from.failed()}
}

func (r Result[T]) failed() *failure {
	if r.fail == nil {
		return emptyFailure
	}
	return r.fail
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the held value. Calling it on a failure is a programming
// error: it panics with an *InvalidStateError wrapping the cause.
func (r Result[T]) Get() T {
	if !r.isSuccess {
		panic(invalidState("Get", "called Get on a failed result", r.failed().cause))
	}
	return r.result
}

// Cause returns the held cause. Calling it on a success panics with an
// *InvalidStateError.
func (r Result[T]) Cause() error {
	if r.isSuccess {
		panic(invalidState("Cause", "result is a success, there is no cause", nil))
	}
	return r.failed().cause
}

// Unwrap returns the value and a nil error on success, or the zero value
// and the cause on failure. It never panics.
func (r Result[T]) Unwrap() (T, error) {
	if !r.isSuccess {
		var zero T
		return zero, r.failed().cause
	}
	return r.result, nil
}

// Peek calls action with the value when r is a success and returns r
// unchanged. action is not called on a failure.
//
// A panic raised by action is not converted into a failure; it reaches the
// caller of Peek. Peek always returns its receiver.
func (r Result[T]) Peek(action func(T)) Result[T] {
	if r.isSuccess {
		action(r.result)
	}
	return r
}

func (r Result[T]) Id() uuid.UUID {
	if !r.isSuccess {
		return r.failed().id
	}
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	if !r.isSuccess {
		return r.failed().createdAt
	}
	return r.createdAt
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("Success(%v)", r.result)
	}
	return fmt.Sprintf("Failure(%v)", r.failed().cause)
}
