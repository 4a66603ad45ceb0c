package prop

import (
	"fmt"

	"github.com/qmark-go/result/pkg/result"
)

// signal is the internal control-transfer payload raised by Try and
// consumed by the nearest boundary with a matching E. It implements error
// so an escape with no enclosing boundary names the misuse in the panic.
type signal[E any] struct {
	err E
}

func (s signal[E]) Error() string {
	return fmt.Sprintf("prop: Try value escaped without an enclosing boundary: %v", s.err)
}

// Try returns the success value of r, or transfers control to the nearest
// enclosing boundary carrying the error value. Calling Try outside any
// boundary is a programmer error and surfaces as an uncaught panic.
func Try[T, E any](r result.Result[T, E]) T {
	if r.IsOk() {
		return r.Unwrap()
	}
	panic(signal[E]{err: r.UnwrapErr()})
}

// Wrap returns fn guarded by a boundary: a transfer raised by Try inside
// fn (at any depth of plain calls) with error type E comes back as an Err
// return. A normal return passes through unchanged. Panics that are not a
// transfer for E, including *result.UnwrapError, are re-raised.
func Wrap[T, E any](fn func() result.Result[T, E]) func() result.Result[T, E] {
	return func() (res result.Result[T, E]) {
		defer intercept(&res)
		return fn()
	}
}

// Wrap1 is Wrap for a unary function.
func Wrap1[A, T, E any](fn func(A) result.Result[T, E]) func(A) result.Result[T, E] {
	return func(a A) (res result.Result[T, E]) {
		defer intercept(&res)
		return fn(a)
	}
}

// Wrap2 is Wrap for a binary function.
func Wrap2[A, B, T, E any](fn func(A, B) result.Result[T, E]) func(A, B) result.Result[T, E] {
	return func(a A, b B) (res result.Result[T, E]) {
		defer intercept(&res)
		return fn(a, b)
	}
}

// Do runs fn under a boundary immediately. Do(fn) is Wrap(fn)().
func Do[T, E any](fn func() result.Result[T, E]) result.Result[T, E] {
	return Wrap(fn)()
}

func intercept[T, E any](res *result.Result[T, E]) {
	rec := recover()
	if rec == nil {
		return
	}
	if s, ok := rec.(signal[E]); ok {
		*res = result.Err[T, E](s.err)
		return
	}
	panic(rec)
}
