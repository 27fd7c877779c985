// Package solo contains single-value, synchronous primitives that operate
// on rop.Result[T]. They are the building blocks of fallible pipelines.
//
// Highlights:
// - Succeed/Fail/Try/TryValue: construct Result[T]
// - Map/AndThen: transform successful values, capturing panics
// - FlatMap: continue with a function that itself returns a Result
// - TryMap: call a function (Out, error) and convert error to failure
// - Peek: side effect on success only
// - Finally: reduce to a concrete value via success/failure handlers
//
// Every operator propagates a failure unchanged: the function it was given
// is not called and the cause, id and creation time are kept.
package solo
