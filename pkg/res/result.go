package res

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries a failure across a value-type change, keeping the
// original id and creation time. Calling it on a success is a programming
// error; the success value cannot cross the type change.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
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

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Get exposes the result as a plain (value, error) pair, so callers can
// propagate failures with an ordinary early return.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// Unwrap returns the success value and panics on failure. It is an escape
// hatch for call sites that have already established success; failures on
// the normal path belong to MapErr/Finally, not here.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		panic(fmt.Sprintf("res: unwrap of failed result: %v", r.err))
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (r Result[T]) Expect(msg string) T {
	if !r.isSuccess {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// MapErr rewrites the failure payload, usually to unify errors from
// different collaborators at a module boundary. Success passes through.
func (r Result[T]) MapErr(f func(error) error) Result[T] {
	if r.isSuccess {
		return r
	}
	return Result[T]{
		err:       f(r.err),
		isSuccess: false,
		createdAt: r.createdAt,
		id:        r.id,
	}
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
