package pipe

import (
	"errors"

	"github.com/ib-77/optres/pkg/res"
)

func Succeed[T any](input T) res.Result[T] {
	return res.Success(input)
}

func Fail[T any](err error) res.Result[T] {
	return res.Fail[T](err)
}

func Validate[T any](input res.Result[T],
	validate func(in T) (valid bool, errMsg string)) res.Result[T] {

	if input.IsSuccess() {

		if valid, errMsg := validate(input.Value()); valid {
			return input
		} else {
			return res.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

// Bind switches the rail from Result[In] to Result[Out]. On failure the
// step is never invoked and the failure crosses the type change intact.
func Bind[In any, Out any](input res.Result[In],
	onSuccess func(in In) res.Result[Out]) res.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return res.FailFrom[In, Out](input)
}

func Map[In any, Out any](input res.Result[In],
	onSuccess func(in In) Out) res.Result[Out] {

	if input.IsSuccess() {
		return res.Success(onSuccess(input.Value()))
	}
	return res.FailFrom[In, Out](input)
}

// Try lifts a plain (Out, error) function onto the rail, turning a non-nil
// error into a failure.
func Try[In any, Out any](input res.Result[In],
	onTryExecute func(in In) (Out, error)) res.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Value())
		if err != nil {
			return res.Fail[Out](err)
		}

		return res.Success(out)
	}
	return res.FailFrom[In, Out](input)
}

func FailOn[T any](input res.Result[T],
	maybeErr func(in T) error) res.Result[T] {

	if input.IsSuccess() {
		if err := maybeErr(input.Value()); err != nil {
			return res.Fail[T](err)
		}
	}
	return input
}

func Tee[T any](input res.Result[T], onSuccess func(in T)) res.Result[T] {
	if input.IsSuccess() {
		onSuccess(input.Value())
	}
	return input
}

func TeeErr[T any](input res.Result[T], onFailure func(err error)) res.Result[T] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// Finally leaves the rail, reducing either state to a concrete value.
func Finally[In, Out any](input res.Result[In],
	onSuccess func(in In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Err())
}

// JoinAll runs steps in order. With breakOnError it returns the first
// failure; otherwise every failure is accumulated into a single joined
// error while later steps keep seeing the last successful value.
func JoinAll[T any](input res.Result[T],
	breakOnError bool,
	steps ...func(in res.Result[T]) res.Result[T]) res.Result[T] {

	if len(steps) == 0 {
		return input
	}

	var joined error
	current := input

	for _, step := range steps {
		next := step(current)

		if next.IsFailure() {
			if breakOnError {
				return next
			}
			joined = errors.Join(append(res.Errors(joined), next.Err())...)
			continue
		}
		current = next
	}

	if !res.IsNil(joined) {
		return res.Fail[T](joined)
	}
	return current
}
