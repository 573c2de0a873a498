package rop

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the (result, error) tuple produced by the trycatch adapters.
// The result slot is only meaningful when the error slot is empty. A result
// that happens to be an error value is still a success.
type Outcome[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    R
	err       *ThrownError
}

// Ok builds the success variant.
func Ok[R any](r R) Outcome[R] {
	return Outcome[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		result:    r,
	}
}

// Err builds the failure variant, wrapping thrown exactly once.
func Err[R any](thrown any) Outcome[R] {
	return ErrFrom[R](NewThrownError(thrown))
}

// ErrFrom builds the failure variant around an existing ThrownError.
func ErrFrom[R any](err *ThrownError) Outcome[R] {
	return Outcome[R]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func (o Outcome[R]) Result() R {
	return o.result
}

// Err returns nil for the success variant.
func (o Outcome[R]) Err() *ThrownError {
	return o.err
}

// Unpack returns the tuple in the usual Go order. The error is a nil
// interface on success, never a typed nil.
func (o Outcome[R]) Unpack() (R, error) {
	if o.err == nil {
		return o.result, nil
	}
	var zero R
	return zero, o.err
}

func (o Outcome[R]) IsSuccess() bool {
	return o.err == nil
}

func (o Outcome[R]) IsCancel() bool {
	return o.err != nil && o.err.IsCancel()
}

func (o Outcome[R]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[R]) Id() uuid.UUID {
	return o.id
}
