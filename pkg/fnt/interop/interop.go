package interop

import (
	"github.com/samber/mo"

	"github.com/funlaws/fnt/pkg/fnt/either"
	"github.com/funlaws/fnt/pkg/fnt/maybe"
)

// OptionFromMaybe converts Maybe[T] to mo.Option[T].
func OptionFromMaybe[T any](m maybe.Maybe[T]) mo.Option[T] {
	if v, ok := m.Unwrap(); ok {
		return mo.Some(v)
	}
	return mo.None[T]()
}

// MaybeFromOption converts mo.Option[T] back to Maybe[T].
func MaybeFromOption[T any](o mo.Option[T]) maybe.Maybe[T] {
	if v, ok := o.Get(); ok {
		return maybe.Some(v)
	}
	return maybe.None[T]()
}

// EitherTo converts Either[L, R] to mo.Either[L, R].
func EitherTo[L, R any](e either.Either[L, R]) mo.Either[L, R] {
	if v, ok := e.GetRight(); ok {
		return mo.Right[L](v)
	}
	l, _ := e.GetLeft()
	return mo.Left[L, R](l)
}

// EitherFrom converts mo.Either[L, R] back to Either[L, R].
func EitherFrom[L, R any](e mo.Either[L, R]) either.Either[L, R] {
	if v, ok := e.Right(); ok {
		return either.Right[L](v)
	}
	l, _ := e.Left()
	return either.Left[L, R](l)
}

// ResultFromEither converts Either[error, T] to mo.Result[T].
func ResultFromEither[T any](e either.Either[error, T]) mo.Result[T] {
	if v, ok := e.GetRight(); ok {
		return mo.Ok(v)
	}
	err, _ := e.GetLeft()
	return mo.Err[T](err)
}

// EitherFromResult converts mo.Result[T] back to Either[error, T].
func EitherFromResult[T any](r mo.Result[T]) either.Either[error, T] {
	if r.IsOk() {
		v, _ := r.Get()
		return either.Right[error](v)
	}
	return either.Left[error, T](r.Error())
}
