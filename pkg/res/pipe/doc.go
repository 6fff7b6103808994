// Package pipe contains single-value, synchronous combinators over
// res.Result[T]. Every function short-circuits: a failure input is passed
// through without invoking the step.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/FailOn: turn invalid input into failure
// - Bind: move from Result[In] to Result[Out]
// - Map/Try: transform values, or lift (Out, error) functions onto the rail
// - Tee/TeeErr: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
// - JoinAll: run steps with break-on-first or accumulate-all failure policy
package pipe
