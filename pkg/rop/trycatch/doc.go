// Package trycatch turns panics, error returns and rejected futures into
// rop.Outcome values. None of its functions panic.
//
// One entry point per task shape:
// - Do: func() R
// - Try: func() (R, error), the error return counts as the failure
// - Async: func() *async.Future[R]
// - Await: an already running *async.Future[R]
// - Go: func() R started on its own goroutine
//
// A task is invoked exactly once. A value returned by the task is always a
// success, even when it is an error value; only a panic, a non-nil error
// return from Try, or a rejection is a failure, and it is wrapped once in a
// *rop.ThrownError. Panic values implementing rop.Unwinding, such as a
// macro short-circuit raised inside a task, are not captured and keep
// unwinding.
package trycatch
