package chain

import (
	"github.com/ib-77/tryrop/pkg/rop"
	"github.com/ib-77/tryrop/pkg/rop/solo"
)

// Chain wraps a rop.Result to enable fluent chaining
type Chain[T any] struct {
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](result rop.Result[T]) *Chain[T] {
	return &Chain[T]{result: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return Start(rop.Success(value))
}

// FromTry creates a new chain from the outcome of computation
func FromTry[T any](computation func() (T, error)) *Chain[T] {
	return Start(rop.Try(computation))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Peek performs a side effect without changing the result
func (c *Chain[T]) Peek(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{result: solo.Peek(c.result, onSuccess)}
}

// Map chains a transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// AndThen is Map
func AndThen[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{result: solo.AndThen(c.result, onSuccess)}
}

// FlatMap chains a function that returns rop.Result[U]
func FlatMap[T, U any](c *Chain[T], onSuccess func(T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{result: solo.FlatMap(c.result, onSuccess)}
}

// TryMap chains a function that returns (U, error)
func TryMap[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{result: solo.TryMap(c.result, tryOnSuccess)}
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
