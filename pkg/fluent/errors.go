package fluent

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// CaughtError is returned by Get when the computation failed. The captured
// failure is reachable through Unwrap, errors.Is and errors.As.
type CaughtError struct {
	cause error
}

func newCaughtError(cause error) *CaughtError {
	return &CaughtError{cause: cause}
}

func (e *CaughtError) Error() string {
	return fmt.Sprintf("caught error: %s", e.cause)
}

func (e *CaughtError) Unwrap() error {
	return e.cause
}

// Cause lets errors.Cause from github.com/pkg/errors see through the wrapper.
func (e *CaughtError) Cause() error {
	return e.cause
}

// PanicError is the failure captured when a computation panics.
type PanicError struct {
	value any
	stack errors.StackTrace
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// newPanicError must be called from the deferred recover so the stack still
// holds the panicking frames.
func newPanicError(v any) *PanicError {
	st := errors.New("panic").(stackTracer).StackTrace()
	return &PanicError{value: v, stack: fromPanicSite(st)}
}

// fromPanicSite drops the frames above and inside the runtime panic machinery.
func fromPanicSite(st errors.StackTrace) errors.StackTrace {
	for i, f := range st {
		if fmt.Sprintf("%n", f) != "gopanic" {
			continue
		}
		rest := st[i+1:]
		for len(rest) > 1 && strings.HasPrefix(fmt.Sprintf("%+s", rest[0]), "runtime.") {
			rest = rest[1:]
		}
		if len(rest) == 0 {
			break
		}
		return rest
	}
	return st
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value is the raw value passed to panic.
func (e *PanicError) Value() any {
	return e.value
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// StackTrace is where the panic happened. apex/log picks it up as the
// "source" field in WithError.
func (e *PanicError) StackTrace() errors.StackTrace {
	return e.stack
}
