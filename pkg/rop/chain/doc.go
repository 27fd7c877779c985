// Package chain provides a fluent wrapper around Result[T]
// for building synchronous pipelines using solo primitives.
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain from a Result[T], a value or a computation
// - Map/AndThen: transform the successful value (T -> U)
// - FlatMap: switch to a new Result[U] via a function
// - TryMap: call a function (U, error) and convert error to failure
// - Peek: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
