// Package optional provides Optional[T], a value that is either present or
// empty. It is what Outcome.ToOptional and Outcome.ToOptionalError return.
//
// Highlights:
// - Of/OfNillable/Empty: construct an Optional
// - Get/MustGet/OrElse/OrElseGet: read the value
// - IfPresent: side effect when a value is held
// - IsNil: the absence test used by OfNillable
package optional
