// Package opt defines Option[T], an immutable container that either holds
// a value (Some) or is empty (None). Transforms never mutate an option in
// place; they build a new one, and none of them fire on None.
//
// Highlights:
// - Some/None: construct Option[T]
// - IsSome/IsNone/Get: inspect without consuming
// - UnwrapOr: default substitution on absence
// - Unwrap/Expect: assert-and-extract, panicking on None
// - AsRef: non-owning view for inspection without consuming the original
// - Map/Bind: short-circuiting transforms
// - OkOr/FromResult: bridges to and from res.Result[T]
package opt
