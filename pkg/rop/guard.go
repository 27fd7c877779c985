package rop

import (
	"errors"
	"runtime/debug"
)

// Guard runs fn and returns its result. A panic inside fn is recovered and
// returned as a failure: an error value becomes the cause as is, any other
// value is wrapped in a *PanicError. Panics carrying ErrInvalidState are
// re-raised.
func Guard[T any](fn func() Result[T]) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](recovered(p))
		}
	}()
	return fn()
}

func recovered(p any) error {
	err, ok := p.(error)
	if !ok || IsNil(err) {
		return &PanicError{Value: p, Stack: debug.Stack()}
	}
	if errors.Is(err, ErrInvalidState) {
		panic(p)
	}
	return err
}

// Try runs fn in a protected region. A returned error or a panic becomes
// the cause of a failure; otherwise the value is wrapped in a success.
func Try[T any](fn func() (T, error)) Result[T] {
	return Guard(func() Result[T] {
		v, err := fn()
		if !IsNil(err) {
			return Fail[T](err)
		}
		return Success(v)
	})
}

// TryValue is Try for computations that can only fail by panicking.
func TryValue[T any](fn func() T) Result[T] {
	return Guard(func() Result[T] {
		return Success(fn())
	})
}
