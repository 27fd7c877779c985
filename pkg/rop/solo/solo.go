package solo

import (
	"github.com/ib-77/tryrop/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Try[T any](computation func() (T, error)) rop.Result[T] {
	return rop.Try(computation)
}

func TryValue[T any](computation func() T) rop.Result[T] {
	return rop.TryValue(computation)
}

// Map applies onSuccess to the value of a success. A panic in onSuccess
// yields a failure carrying the panic as its cause.
func Map[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Guard(func() rop.Result[Out] {
			return rop.Success(onSuccess(input.Get()))
		})
	}
	return rop.FailFrom[In, Out](input)
}

// AndThen is Map.
func AndThen[In any, Out any](input rop.Result[In],
	onSuccess func(r In) Out) rop.Result[Out] {
	return Map(input, onSuccess)
}

// FlatMap returns the Result produced by onSuccess as is.
func FlatMap[In any, Out any](input rop.Result[In],
	onSuccess func(r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Guard(func() rop.Result[Out] {
			return onSuccess(input.Get())
		})
	}
	return rop.FailFrom[In, Out](input)
}

func TryMap[In any, Out any](input rop.Result[In],
	onTryExecute func(r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Try(func() (Out, error) {
			return onTryExecute(input.Get())
		})
	}
	return rop.FailFrom[In, Out](input)
}

// Peek is the function form of Result.Peek; a panic in onSuccess is not
// recovered.
func Peek[T any](input rop.Result[T], onSuccess func(r T)) rop.Result[T] {
	return input.Peek(onSuccess)
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Get())
	}
	return onFailure(input.Cause())
}
