// Package fluent reifies the outcome of a fallible computation so failure
// handling can be chained instead of nested.
//
// An Outcome[T] is built once by Of, which runs the computation immediately
// and captures either its value (nil included) or its failure. Returned
// errors and panics are captured alike. Outcomes are immutable.
//
// Highlights:
// - Of/OfFunc: run a computation and capture the result
// - Succeed/Fail: build a completed Outcome directly
// - Get/MustGet: read the value, or a *CaughtError wrapping the failure
// - OnError: side effect on failure only, returns the same Outcome
// - MapError/MapErrorToResult: transform a failure, or recover from it
// - ToOptional/ToOptionalError: view the value or the failure as an Optional
// - Map/Then/Finally: type-changing composition
//
// Only the computation given to Of (or Then) is guarded. Functions passed to
// the combinators run unguarded and their panics reach the caller.
package fluent
