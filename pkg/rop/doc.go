// Package rop defines Result[T], the outcome of a computation that either
// produced a value (success) or failed with a cause (failure).
//
// A Result is constructed with Success, Fail, Try or TryValue and is
// immutable afterwards. Accessing the value of a failure (Get) or the cause
// of a success (Cause) is a programming error reported by panicking with an
// *InvalidStateError; it is never represented as a failure.
//
// Operators that change the value type live in package solo; package chain
// wraps them in a fluent form.
package rop
