// Package chain provides a fluent wrapper around res.Result[T] for building
// multi-step fallible pipelines out of pipe primitives.
//
// A chain keeps going as long as every step so far succeeded; the first
// failure skips all remaining steps and surfaces at the end, optionally
// converted per step via MapErr. Steps that change the value type (Then,
// ThenTry, Map) are package-level functions because Go methods cannot
// introduce new type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - MapErr: convert the failure payload at a boundary
// - Ensure: run side effects on success without changing the result
// - UnwrapOr/Finally: collapse the chain into a final value
package chain
