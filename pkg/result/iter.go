package result

import "iter"

// Iter returns a lazy sequence over the success value: one element on an
// Ok, none on an Err. Each call yields a fresh, restartable sequence.
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.isOk {
			yield(r.value)
		}
	}
}

// IterErr returns a lazy sequence over the error value: one element on an
// Err, none on an Ok.
func (r Result[T, E]) IterErr() iter.Seq[E] {
	return func(yield func(E) bool) {
		if !r.isOk {
			yield(r.errVal)
		}
	}
}
