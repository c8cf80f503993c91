package fluent

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fluent/pkg/fluent/optional"
)

type state interface {
	sealed()
}

type success[T any] struct {
	value T
}

type failure struct {
	err error
}

func (success[T]) sealed() {}
func (failure) sealed() {}

// Outcome is the completed result of a fallible computation: either a value,
// possibly nil, or the captured failure. An Outcome never changes once built;
// combinators return either the receiver or a new Outcome.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	state     state
}

func newOutcome[T any](s state) *Outcome[T] {
	return &Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		state:     s,
	}
}

// Of runs fn once, right away, and captures what it produced. A non-nil
// error or a panic makes a failed Outcome; anything else, nil included, is a
// success. Of itself never panics.
//
//	o := fluent.Of(func() (string, error) { return "myString", nil })
//	v, _ := o.Get() // "myString"
func Of[T any](fn func() (T, error)) (out *Outcome[T]) {
	defer func() {
		if v := recover(); v != nil {
			out = newOutcome[T](failure{err: newPanicError(v)})
		}
	}()

	v, err := fn()
	if err != nil {
		return newOutcome[T](failure{err: err})
	}
	return newOutcome[T](success[T]{value: v})
}

// OfFunc is Of for computations that only fail by panicking.
func OfFunc[T any](fn func() T) *Outcome[T] {
	return Of(func() (T, error) {
		return fn(), nil
	})
}

func Succeed[T any](v T) *Outcome[T] {
	return newOutcome[T](success[T]{value: v})
}

// Fail returns a failed Outcome holding err. A nil err gives a success of
// the zero value, the same as Of does.
func Fail[T any](err error) *Outcome[T] {
	if err == nil {
		var zero T
		return Succeed(zero)
	}
	return newOutcome[T](failure{err: err})
}

// captured returns the failure, if any. The zero Outcome is a success of the
// zero value.
func (o *Outcome[T]) captured() (err error, failed bool) {
	if f, ok := o.state.(failure); ok {
		return f.err, true
	}
	return nil, false
}

func (o *Outcome[T]) value() T {
	if s, ok := o.state.(success[T]); ok {
		return s.value
	}
	var zero T
	return zero
}

// Get returns the produced value as is, nil included. If the computation
// failed it returns a *CaughtError wrapping the captured failure instead.
func (o *Outcome[T]) Get() (T, error) {
	if err, failed := o.captured(); failed {
		var zero T
		return zero, newCaughtError(err)
	}
	return o.value(), nil
}

// MustGet is like Get but panics with the *CaughtError.
func (o *Outcome[T]) MustGet() T {
	v, err := o.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// OnError calls fn with the captured failure, if there is one, and returns
// the receiver unchanged.
//
//	fluent.Of(volatile).OnError(func(err error) { log.WithError(err).Error("volatile") })
func (o *Outcome[T]) OnError(fn func(err error)) *Outcome[T] {
	if err, failed := o.captured(); failed {
		fn(err)
	}
	return o
}

// MapError replaces the captured failure with fn(err). A success is returned
// as is and fn is not called. If fn returns nil the result is a success of
// the zero value.
func (o *Outcome[T]) MapError(fn func(err error) error) *Outcome[T] {
	if err, failed := o.captured(); failed {
		return Fail[T](fn(err))
	}
	return o
}

// MapErrorToResult turns a failure into a success holding fn(err). Use it
// when the fallback depends on the error; otherwise prefer
// ToOptional().OrElse.
func (o *Outcome[T]) MapErrorToResult(fn func(err error) T) *Outcome[T] {
	if err, failed := o.captured(); failed {
		return Succeed(fn(err))
	}
	return o
}

// ToOptional is empty when the computation failed and also when it produced
// nil. The two cases are indistinguishable here; use ToOptionalError or Get
// to tell them apart.
func (o *Outcome[T]) ToOptional() optional.Optional[T] {
	if _, failed := o.captured(); failed {
		return optional.Empty[T]()
	}
	return optional.OfNillable(o.value())
}

// ToOptionalError holds the captured failure, if any.
func (o *Outcome[T]) ToOptionalError() optional.Optional[error] {
	if err, failed := o.captured(); failed {
		return optional.Of(err)
	}
	return optional.Empty[error]()
}

func (o *Outcome[T]) IsSuccess() bool {
	_, failed := o.captured()
	return !failed
}

func (o *Outcome[T]) IsFailure() bool {
	_, failed := o.captured()
	return failed
}

// Err returns the captured failure without wrapping, or nil.
func (o *Outcome[T]) Err() error {
	err, _ := o.captured()
	return err
}

func (o *Outcome[T]) ID() uuid.UUID {
	return o.id
}

// CreatedAt is the UTC time the Outcome was built.
func (o *Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Outcome[T]) String() string {
	if err, failed := o.captured(); failed {
		return fmt.Sprintf("Failure(%v)", err)
	}
	return fmt.Sprintf("Success(%v)", o.value())
}
