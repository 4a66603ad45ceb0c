// Package result implements a two-variant outcome type, Result[T, E],
// holding either a success value of type T or an error value of type E.
// Results are immutable; every operation reads the value or produces a
// fresh one, so sharing across goroutines needs no synchronization.
//
// Highlights:
// - Ok/Err/From: construct Result[T, E]
// - IsOk/IsErr/IsOkAnd/IsErrAnd: variant predicates
// - Unwrap/UnwrapErr/Expect/ExpectErr: extract, panicking with *UnwrapError
//   when called on the wrong variant
// - UnwrapOr/UnwrapOrElse: total extraction with a fallback
// - Map/MapErr/MapOr/MapOrElse: transform one side of the outcome
// - AndThen/OrElse: chain fallible steps, short-circuiting on the other side
// - Iter/IterErr: zero-or-one element lazy sequences over the payload
//
// Transformations that change the success or error type are package-level
// functions because a Go method cannot introduce a new type parameter.
package result
