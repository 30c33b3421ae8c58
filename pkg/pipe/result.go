package pipe

import (
	"time"

	"github.com/google/uuid"
)

// Result is the settled state of a chain: a present value, absence, or a failure.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	present   bool
}

func Present[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		present:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Absent[T any]() Result[T] {
	return Result[T]{
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure keeps err as is. A nil err is replaced with ErrAbsent so that a
// failed Result is never mistaken for an absent one.
func Failure[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrAbsent
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromOption lifts o into a Result without a failure.
func FromOption[T any](o Option[T]) Result[T] {
	if v, ok := o.Get(); ok {
		return Present(v)
	}
	return Absent[T]()
}

// FromValue adapts a (value, error) pair.
func FromValue[T any](v T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Present(v)
}

// FailFrom moves a failure to another value type keeping id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// AbsentFrom moves absence to another value type keeping id and creation time.
func AbsentFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// PresentFrom carries the identity of from over to a new present value.
func PresentFrom[In, Out any](from Result[In], v Out) Result[Out] {
	return Result[Out]{
		value:     v,
		present:   true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FailureFrom carries the identity of from over to a new failure.
func FailureFrom[In, Out any](from Result[In], err error) Result[Out] {
	return Result[Out]{
		err:       OrAbsent(err),
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsPresent() bool {
	return r.err == nil && r.present
}

func (r Result[T]) IsAbsent() bool {
	return r.err == nil && !r.present
}

func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Option drops the failure, if any, and returns the value as an Option.
func (r Result[T]) Option() Option[T] {
	if r.IsPresent() {
		return Some(r.value)
	}
	return None[T]()
}

func (r Result[T]) Unwrap() (Option[T], error) {
	return r.Option(), r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
