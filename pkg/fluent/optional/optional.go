package optional

import (
	"errors"
	"fmt"
)

var ErrEmpty = errors.New("optional is empty")

// Optional holds either a value or nothing. The zero value is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding v, even when v is nil.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// OfNillable returns an empty Optional when v is nil, see IsNil.
func OfNillable[T any](v T) Optional[T] {
	if IsNil(v) {
		return Empty[T]()
	}
	return Of(v)
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the held value and whether there was one.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// MustGet returns the held value and panics with ErrEmpty if there is none.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrEmpty)
	}
	return o.value
}

func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

func (o Optional[T]) OrElseGet(other func() T) T {
	if o.present {
		return o.value
	}
	return other()
}

func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
