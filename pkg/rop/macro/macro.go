package macro

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/ib-77/trycatch/pkg/rop"
	"github.com/ib-77/trycatch/pkg/rop/async"
)

var ErrYieldEscaped = errors.New("macro: yield used after its sequence returned")

// Yield is handed to a sequence function and is only valid on that
// function's goroutine while it runs. Bridge calls may sit inside
// trycatch tasks and Pipeline steps run on that goroutine; they must not be
// made from another goroutine, including one started by async.Go.
type Yield struct {
	closed atomic.Bool
}

type shortCircuit struct {
	y   *Yield
	err error
}

func (*shortCircuit) Unwinding() {}

// Result is the outcome of RunAsync: either the error that ended the
// sequence early or the value it returned.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) Unpack() (T, error) {
	return r.Value, r.Err
}

func (r Result[T]) ShortCircuited() bool {
	return r.Err != nil
}

// Run executes seq. It returns the value returned by seq, or the zero value
// and the first error passed to one of the bridge functions. Any other panic
// raised by seq, including the cause of a rejected future given to
// CheckFuture, propagates unchanged.
func Run[T any](seq func(y *Yield) T) (res T, err error) {
	y := &Yield{}
	defer y.closed.Store(true)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		sc, ok := r.(*shortCircuit)
		if !ok || sc.y != y {
			panic(r)
		}
		var zero T
		res, err = zero, sc.err
	}()

	return seq(y), nil
}

// RunAsync executes seq on a new goroutine. The future resolves with the
// Result of the sequence and rejects, with the original value, when seq
// panics.
func RunAsync[T any](ctx context.Context, seq func(ctx context.Context, y *Yield) T) *async.Future[Result[T]] {
	return async.Go(func() Result[T] {
		v, err := Run(func(y *Yield) T {
			return seq(ctx, y)
		})
		return Result[T]{Value: v, Err: err}
	})
}

// Check returns v unless it is a non-nil error, in which case the sequence
// ends with v as its error.
func Check[V any](y *Yield, v V) V {
	if err, ok := rop.AsError(v); ok {
		y.stop(err)
	}
	y.live()
	return v
}

// Unwrap is Check for the (value, error) form. As with Check, a typed nil
// pointer in err does not end the sequence.
func Unwrap[V any](y *Yield, v V, err error) V {
	if e, ok := rop.AsError(err); ok {
		y.stop(e)
	}
	y.live()
	return v
}

// Outcome returns the result of o or ends the sequence with its
// *rop.ThrownError.
func Outcome[V any](y *Yield, o rop.Outcome[V]) V {
	if err := o.Err(); err != nil {
		y.stop(err)
	}
	y.live()
	return o.Result()
}

// CheckFuture waits for f and applies Check to its value. A rejection is not
// turned into an error: its cause is re-panicked as is. A nil cause is the
// exception, panic(nil) surfaces as a *runtime.PanicNilError. If ctx is done
// before f settles the sequence ends with ctx.Err().
func CheckFuture[V any](ctx context.Context, y *Yield, f *async.Future[V]) V {
	y.live()

	v, err := f.Await(ctx)
	if err != nil {
		if cause, ok := async.RejectionCause(err); ok {
			panic(cause)
		}
		y.stop(err)
	}
	return Check(y, v)
}

func (y *Yield) live() {
	if y.closed.Load() {
		panic(ErrYieldEscaped)
	}
}

func (y *Yield) stop(err error) {
	y.live()
	panic(&shortCircuit{y: y, err: err})
}
