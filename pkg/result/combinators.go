package result

// Map transforms the success value with f. An Err passes through with its
// payload and metadata intact; f is invoked only on an Ok.
func Map[T, E, R any](r Result[T, E], f func(T) R) Result[R, E] {
	if r.isOk {
		return Ok[R, E](f(r.value))
	}
	return errFrom[R](r)
}

// MapErr transforms the error value with f. An Ok passes through untouched.
func MapErr[T, E, R any](r Result[T, E], f func(E) R) Result[T, R] {
	if r.isOk {
		return okFrom[R](r)
	}
	return Err[T](f(r.errVal))
}

// MapOr returns f applied to the success value, or def on an Err.
func MapOr[T, E, R any](r Result[T, E], f func(T) R, def R) R {
	if r.isOk {
		return f(r.value)
	}
	return def
}

// MapOrElse collapses the result: f on an Ok, defF on an Err.
// Exactly one of the two is invoked.
func MapOrElse[T, E, R any](r Result[T, E], f func(T) R, defF func(E) R) R {
	if r.isOk {
		return f(r.value)
	}
	return defF(r.errVal)
}

// AndThen feeds the success value into the next fallible step. An Err
// short-circuits: f is not invoked and the payload passes through.
func AndThen[T, E, R any](r Result[T, E], f func(T) Result[R, E]) Result[R, E] {
	if r.isOk {
		return f(r.value)
	}
	return errFrom[R](r)
}

// OrElse feeds the error value into a recovery step. An Ok short-circuits:
// f is not invoked and the value passes through.
func OrElse[T, E, R any](r Result[T, E], f func(E) Result[T, R]) Result[T, R] {
	if r.isOk {
		return okFrom[R](r)
	}
	return f(r.errVal)
}
