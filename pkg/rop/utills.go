package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// AsError reports whether v is a non-nil value implementing error. Typed nil
// pointers stored in an interface are not errors.
func AsError(v any) (error, bool) {
	err, ok := v.(error)
	if !ok || IsNil(err) {
		return nil, false
	}
	return err, true
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Unwinding is implemented by panic values that carry a non-local exit, such
// as a macro short-circuit, up to the code that raised it. Code that recovers
// panics into values must re-panic them.
type Unwinding interface {
	Unwinding()
}

func IsUnwinding(v any) bool {
	_, ok := v.(Unwinding)
	return ok
}
