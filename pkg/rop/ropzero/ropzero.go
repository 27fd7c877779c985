// Package ropzero lets a rop.Result be logged as a zerolog object.
package ropzero

import (
	"github.com/rs/zerolog"

	"github.com/ib-77/tryrop/pkg/rop"
)

type object[T any] struct {
	r rop.Result[T]
}

// Object adapts r for zerolog.Event.Object and zerolog.Context.Object.
func Object[T any](r rop.Result[T]) zerolog.LogObjectMarshaler {
	return object[T]{r: r}
}

func (o object[T]) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", o.r.Id().String()).
		Time("created_at", o.r.CreatedAt()).
		Bool("success", o.r.IsSuccess())

	v, err := o.r.Unwrap()
	if err == nil {
		e.Interface("value", v)
		return
	}

	if errs := rop.GetErrors(err); len(errs) > 1 {
		e.Errs("errors", errs)
		return
	}
	e.AnErr("error", err)
}

// Event logs r on logger at info level when it is a success and at error
// level otherwise. msg is the log message.
func Event[T any](logger zerolog.Logger, r rop.Result[T], msg string) {
	ev := logger.Info()
	if r.IsFailure() {
		ev = logger.Error()
	}
	ev.Object("result", Object(r)).Msg(msg)
}
