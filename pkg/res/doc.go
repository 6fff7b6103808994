// Package res defines Result[T], an immutable two-state container holding
// either a success value or an error. A Result is built once by Success or
// Fail and never mutated; every transform in the subpackages produces a
// fresh container.
//
// Highlights:
// - Success/Fail: construct Result[T]
// - Value/Err/IsSuccess/IsFailure: inspect without consuming
// - Get: (value, error) bridge for plain early-return propagation
// - UnwrapOr: default substitution on failure
// - Unwrap/Expect: assert-and-extract, panicking on failure
// - MapErr: rewrite the failure payload at a module boundary
//
// Composition lives in res/pipe (free functions) and res/chain (fluent).
package res
