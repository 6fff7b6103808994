package opt

import "github.com/ib-77/optres/pkg/res"

// Map applies f to the held value if Some, rewrapping the output. On None
// the function is never invoked.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[U]()
}

// Bind applies an option-returning step if Some, flattening the output.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.ok {
		return f(o.value)
	}
	return None[U]()
}

// AsRef produces a non-owning view of the option, so transforms can
// inspect the value while the original stays valid. It is a package-level
// function because a method on Option[T] cannot instantiate Option[*T].
func AsRef[T any](o *Option[T]) Option[*T] {
	if !o.ok {
		return None[*T]()
	}
	return Some(&o.value)
}

// OkOr moves the option onto the result rail: Some becomes Success and
// None becomes a failure carrying err.
func OkOr[T any](o Option[T], err error) res.Result[T] {
	if o.ok {
		return res.Success(o.value)
	}
	return res.Fail[T](err)
}

// FromResult drops the error payload of a result, keeping only presence.
func FromResult[T any](r res.Result[T]) Option[T] {
	if r.IsSuccess() {
		return Some(r.Value())
	}
	return None[T]()
}
