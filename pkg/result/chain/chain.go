package chain

import (
	"github.com/qmark-go/result/pkg/result"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[T, E any] struct {
	res result.Result[T, E]
}

// Start creates a new chain from a result.Result
func Start[T, E any](r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// From creates a new chain from a successful value
func From[T, E any](v T) Chain[T, E] {
	return Start(result.Ok[T, E](v))
}

// Result returns the underlying result.Result
func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result.Result
func (c Chain[T, E]) Then(onOk func(T) result.Result[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: onOk(c.res.Unwrap())}
}

// Map transforms the successful value to a new value of the same type
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T, E]{res: result.Ok[T, E](onOk(c.res.Unwrap()))}
}

// OrElse composes a recovery function fed with the failure value.
// A successful chain passes through unchanged.
func (c Chain[T, E]) OrElse(onErr func(E) result.Result[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return Chain[T, E]{res: onErr(c.res.UnwrapErr())}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.UnwrapErr())
		}
		return c
	}
	if onOk != nil {
		onOk(c.res.Unwrap())
	}
	return c
}

// Or returns c when successful, the alternative otherwise
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And returns the first failing chain, or the required chain when both succeeded
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Then switches the chain to a new success type via a fallible step
func Then[T, E, R any](c Chain[T, E], onOk func(T) result.Result[R, E]) Chain[R, E] {
	return Chain[R, E]{res: result.AndThen(c.res, onOk)}
}

// Map switches the chain to a new success type via a pure transformation
func Map[T, E, R any](c Chain[T, E], onOk func(T) R) Chain[R, E] {
	return Chain[R, E]{res: result.Map(c.res, onOk)}
}

// ThenTry composes a function that returns (R, error), for error-typed chains
func ThenTry[T, R any](c Chain[T, error], try func(T) (R, error)) Chain[R, error] {
	return Chain[R, error]{res: result.AndThen(c.res, func(v T) result.Result[R, error] {
		return result.From(try(v))
	})}
}

// Finally collapses the chain to a final value, delegating to result.MapOrElse
func Finally[T, E, R any](c Chain[T, E], onOk func(T) R, onErr func(E) R) R {
	return result.MapOrElse(c.res, onOk, onErr)
}
