package trycatch

import (
	"context"

	"github.com/ib-77/trycatch/pkg/rop"
	"github.com/ib-77/trycatch/pkg/rop/async"
)

// Do runs task and returns Ok with its value, or Err with the recovered panic.
func Do[R any](task func() R) (out rop.Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			if rop.IsUnwinding(r) {
				panic(r)
			}
			out = rop.Err[R](r)
		}
	}()

	return rop.Ok(task())
}

// Try runs a task in the (value, error) form. A non-nil error is treated as
// thrown: the outcome is Err and its cause is that error. A typed nil pointer
// returned as the error is not a failure, the same rule rop.AsError applies.
func Try[R any](task func() (R, error)) (out rop.Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			if rop.IsUnwinding(r) {
				panic(r)
			}
			out = rop.Err[R](r)
		}
	}()

	res, err := task()
	if e, ok := rop.AsError(err); ok {
		return rop.Err[R](e)
	}
	return rop.Ok(res)
}

// Async invokes task synchronously and settles the returned future with the
// outcome of the future it produced. A synchronous panic yields a future that
// is already settled with the Err outcome.
func Async[R any](ctx context.Context, task func() *async.Future[R]) *async.Future[rop.Outcome[R]] {
	started := Do(task)
	if !started.IsSuccess() {
		return async.Resolved(rop.ErrFrom[R](started.Err()))
	}

	return Await(ctx, started.Result())
}

// Await settles the returned future with Ok when f resolves and Err when it
// rejects. If ctx is done first the outcome is Err with ctx.Err() as cause.
// The returned future never rejects.
func Await[R any](ctx context.Context, f *async.Future[R]) *async.Future[rop.Outcome[R]] {
	if f == nil {
		return async.Resolved(rop.Err[R](async.ErrNilFuture))
	}

	out, resolve, _ := async.New[rop.Outcome[R]]()

	go func() {
		resolve(settle(ctx, f))
	}()

	return out
}

// Go starts task on its own goroutine and adapts it like Await.
func Go[R any](ctx context.Context, task func() R) *async.Future[rop.Outcome[R]] {
	return Await(ctx, async.Go(task))
}

func settle[R any](ctx context.Context, f *async.Future[R]) rop.Outcome[R] {
	res, err := f.Await(ctx)
	if err == nil {
		return rop.Ok(res)
	}

	if cause, ok := async.RejectionCause(err); ok {
		return rop.Err[R](cause)
	}
	return rop.Err[R](err)
}
