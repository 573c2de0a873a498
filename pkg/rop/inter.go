package rop

import "time"

type ResultProvider[T any] interface {
	// Result returns the value produced by the task
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for outcomes that carry a result or a thrown error
type WithError[T any] interface {
	ResultProvider[T]
	// Unpack returns the result and a nil error, or the zero value and the thrown error
	Unpack() (T, error)
	// IsSuccess returns true if nothing was thrown
	IsSuccess() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the failure was a context cancellation
	IsCancel() bool
}

var _ WithCancel[int] = Outcome[int]{}
