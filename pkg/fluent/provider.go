package fluent

import (
	"time"

	"github.com/google/uuid"
)

// Provider is the read side of an Outcome.
type Provider[T any] interface {
	// Get returns the value, or a *CaughtError if the computation failed
	Get() (T, error)
	// Err returns the captured failure or nil
	Err() error
	// IsSuccess returns true if the computation produced a value
	IsSuccess() bool
	// ID identifies this Outcome instance
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var _ Provider[any] = (*Outcome[any])(nil)
