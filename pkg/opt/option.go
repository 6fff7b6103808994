package opt

import "fmt"

// Option represents a value that may be absent. It is either Some,
// holding a value of type T, or None. Exactly one of the two states is
// active; there is no coercion between Option[T] and T.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		ok:    true,
	}
}

// None represents the absence of a value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it was present. A zero value with
// false means None; a zero value with true is a present zero.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnwrapOr returns the held value if Some, otherwise def.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Unwrap returns the held value and panics on None. Use it only when an
// external invariant guarantees presence; absence on a normal path should
// go through Get or UnwrapOr instead.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic("opt: unwrap of none option")
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied diagnostic.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(fmt.Sprintf("opt: %s", msg))
	}
	return o.value
}
