package result

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or an error value of
// type E. Exactly one of the two is populated. The id and creation time
// are debug metadata and take no part in equality.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	errVal    E
	isOk      bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		errVal:    e,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From adapts a conventional (value, error) return. A nil error yields Ok.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// errFrom rewraps an Err payload under a new success type R, keeping the
// original id and creation time.
func errFrom[R, T, E any](from Result[T, E]) Result[R, E] {
	return Result[R, E]{
		errVal:    from.errVal,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// okFrom rewraps an Ok payload under a new error type R, keeping the
// original id and creation time.
func okFrom[R, T, E any](from Result[T, E]) Result[T, R] {
	return Result[T, R]{
		value:     from.value,
		isOk:      true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// IsOkAnd reports whether r is Ok and its value satisfies pred.
// pred is never invoked on an Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.isOk && pred(r.value)
}

// IsErrAnd reports whether r is Err and its error satisfies pred.
// pred is never invoked on an Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.isOk && pred(r.errVal)
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Equal reports whether both results hold the same variant with a
// structurally equal payload. Metadata is ignored.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isOk != other.isOk {
		return false
	}
	if r.isOk {
		return reflect.DeepEqual(r.value, other.value)
	}
	return reflect.DeepEqual(r.errVal, other.errVal)
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.errVal)
}
