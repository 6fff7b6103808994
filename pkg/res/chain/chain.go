package chain

import (
	"github.com/ib-77/optres/pkg/res"
	"github.com/ib-77/optres/pkg/res/pipe"
)

// Chain wraps a res.Result to enable fluent composition
type Chain[T any] struct {
	result res.Result[T]
}

// Start creates a new chain from a res.Result
func Start[T any](result res.Result[T]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: res.Success(value),
	}
}

// Result returns the underlying res.Result
func (c *Chain[T]) Result() res.Result[T] {
	return c.result
}

// Then chains a function that returns res.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(T) res.Result[U]) *Chain[U] {
	return &Chain[U]{
		result: pipe.Bind[T, U](c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: pipe.Try[T, U](c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(T) U) *Chain[U] {
	return &Chain[U]{
		result: pipe.Map[T, U](c.result, onSuccess),
	}
}

// MapErr rewrites the failure payload, converting the error type of the
// current step into the one the enclosing pipeline reports
func (c *Chain[T]) MapErr(onFailure func(error) error) *Chain[T] {
	return &Chain[T]{
		result: c.result.MapErr(onFailure),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(T)) *Chain[T] {
	return &Chain[T]{
		result: pipe.Tee[T](c.result, onSuccess),
	}
}

// UnwrapOr collapses the chain into the success value or a default
func (c *Chain[T]) UnwrapOr(def T) T {
	return c.result.UnwrapOr(def)
}

// Finally collapses the chain into a final value using pipe.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return pipe.Finally[T, U](c.result, onSuccess, onFailure)
}
