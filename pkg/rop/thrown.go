package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-stack/stack"
	"github.com/google/uuid"
)

// ThrownError encapsulates a recovered panic value or a rejection cause in an
// error. The original value is kept as is and is available through Cause.
type ThrownError struct {
	id        uuid.UUID
	createdAt time.Time
	cause     any
	stack     stack.CallStack
}

// NewThrownError wraps cause. It is meant to be called from the recovering
// goroutine so the captured stack still contains the panicking frames.
func NewThrownError(cause any) *ThrownError {
	return &ThrownError{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		cause:     cause,
		stack:     stack.Trace().TrimRuntime(),
	}
}

func (e *ThrownError) Error() string {
	return fmt.Sprintf("thrown error: %v", e.cause)
}

// Cause returns the value that was thrown.
func (e *ThrownError) Cause() any {
	return e.cause
}

// Unwrap exposes the cause to errors.Is and errors.As when it is an error.
func (e *ThrownError) Unwrap() error {
	if err, ok := AsError(e.cause); ok {
		return err
	}
	return nil
}

// IsCancel reports whether the cause is a context cancellation or deadline.
func (e *ThrownError) IsCancel() bool {
	err, ok := AsError(e.cause)
	return ok && IsCancellationError(err)
}

// Stack returns the call stack captured when the error was created.
func (e *ThrownError) Stack() string {
	return fmt.Sprintf("%+v", e.stack)
}

func (e *ThrownError) Id() uuid.UUID {
	return e.id
}

func (e *ThrownError) CreatedAt() time.Time {
	return e.createdAt
}

// CauseOf returns the thrown value carried by err if err wraps a
// ThrownError.
func CauseOf(err error) (any, bool) {
	var te *ThrownError
	if errors.As(err, &te) {
		return te.cause, true
	}
	return nil, false
}
