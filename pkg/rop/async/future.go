package async

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ib-77/trycatch/pkg/rop"
)

var ErrNilFuture = errors.New("async: nil future")

// Future holds the value or the rejection cause of a computation that
// settles at most once.
type Future[T any] struct {
	once     sync.Once
	done     chan struct{}
	value    T
	cause    any
	rejected bool
}

// New returns a pending future and the functions that settle it. Only the
// first call to either function has an effect.
func New[T any]() (*Future[T], func(T), func(any)) {
	f := &Future[T]{done: make(chan struct{})}
	return f, f.resolve, f.reject
}

func Resolved[T any](v T) *Future[T] {
	f, resolve, _ := New[T]()
	resolve(v)
	return f
}

func Rejected[T any](cause any) *Future[T] {
	f, _, reject := New[T]()
	reject(cause)
	return f
}

// Go runs fn on a new goroutine. A panic in fn rejects the future with the
// recovered value. rop.Unwinding values are re-panicked and crash the
// program: a non-local exit cannot cross goroutines.
func Go[T any](fn func() T) *Future[T] {
	f, resolve, reject := New[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				if rop.IsUnwinding(r) {
					panic(r)
				}
				reject(r)
			}
		}()
		resolve(fn())
	}()

	return f
}

// Then resolves the returned future with fn applied to f's value. A
// rejection of f, or a panic in fn, rejects it with the same cause. Like Go,
// it re-panics rop.Unwinding values.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	next, resolve, reject := New[U]()

	go func() {
		<-f.done
		if f.rejected {
			reject(f.cause)
			return
		}

		defer func() {
			if r := recover(); r != nil {
				if rop.IsUnwinding(r) {
					panic(r)
				}
				reject(r)
			}
		}()
		resolve(fn(f.value))
	}()

	return next
}

func (f *Future[T]) resolve(v T) {
	f.once.Do(func() {
		f.value = v
		close(f.done)
	})
}

func (f *Future[T]) reject(cause any) {
	f.once.Do(func() {
		f.cause = cause
		f.rejected = true
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

func (f *Future[T]) Settled() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Await blocks until the future settles or ctx is done. A rejection is
// returned as a *Rejection carrying the original cause.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	var zero T
	if f == nil {
		return zero, ErrNilFuture
	}

	select {
	case <-f.done:
	default:
		select {
		case <-f.done:
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	if f.rejected {
		return zero, &Rejection{cause: f.cause}
	}
	return f.value, nil
}

// Rejection reports a rejected future. Cause is the value passed to reject
// or recovered from the panic, unchanged.
type Rejection struct {
	cause any
}

func (r *Rejection) Error() string {
	return fmt.Sprintf("async: future rejected: %v", r.cause)
}

func (r *Rejection) Cause() any {
	return r.cause
}

func (r *Rejection) Unwrap() error {
	if err, ok := rop.AsError(r.cause); ok {
		return err
	}
	return nil
}

// RejectionCause extracts the raw cause when err is a *Rejection.
func RejectionCause(err error) (any, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.cause, true
	}
	return nil, false
}
