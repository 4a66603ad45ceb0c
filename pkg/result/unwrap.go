package result

import "fmt"

// UnwrapError is the panic payload for extraction called on the wrong
// variant. When the mismatched payload itself implements error it is kept
// as the cause, reachable through errors.Is/errors.As.
type UnwrapError struct {
	msg   string
	cause error
}

func newUnwrapError(msg string, payload any) *UnwrapError {
	e := &UnwrapError{msg: msg}
	if c, ok := payload.(error); ok {
		e.cause = c
	}
	return e
}

func (e *UnwrapError) Error() string {
	return e.msg
}

func (e *UnwrapError) Unwrap() error {
	return e.cause
}

// Unwrap returns the success value. It panics with *UnwrapError on an Err.
func (r Result[T, E]) Unwrap() T {
	if !r.isOk {
		panic(newUnwrapError(fmt.Sprintf("called Unwrap on an Err value: %v", r.errVal), r.errVal))
	}
	return r.value
}

// UnwrapErr returns the error value. It panics with *UnwrapError on an Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.isOk {
		panic(newUnwrapError(fmt.Sprintf("called UnwrapErr on an Ok value: %v", r.value), r.value))
	}
	return r.errVal
}

// Expect returns the success value, panicking with *UnwrapError carrying
// message and the error payload on an Err.
func (r Result[T, E]) Expect(message string) T {
	if !r.isOk {
		panic(newUnwrapError(fmt.Sprintf("%s: %v", message, r.errVal), r.errVal))
	}
	return r.value
}

// ExpectErr returns the error value, panicking with *UnwrapError carrying
// message and the success payload on an Ok.
func (r Result[T, E]) ExpectErr(message string) E {
	if r.isOk {
		panic(newUnwrapError(fmt.Sprintf("%s: %v", message, r.value), r.value))
	}
	return r.errVal
}

// UnwrapOr returns the success value, or def on an Err. Never panics.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isOk {
		return r.value
	}
	return def
}

// UnwrapOrElse returns the success value, or f applied to the error value.
// f is invoked only on an Err.
func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if r.isOk {
		return r.value
	}
	return f(r.errVal)
}
