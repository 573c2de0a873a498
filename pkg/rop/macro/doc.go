// Package macro composes fallible steps with an early-return operator, in
// the spirit of zig's "try". A sequence is a plain function that receives a
// *Yield; every Check (or Unwrap, CheckFuture, Outcome) call either hands the
// value back or, when the value is an error, ends the whole sequence with
// that error:
//
//	v, err := macro.Run(func(y *macro.Yield) int {
//		n, err := strconv.Atoi(s)
//		return macro.Unwrap(y, n, err) * 2
//	})
//
// Only the first error is ever observed: code after a short-circuiting call
// does not run. Run is the synchronous flavor, RunAsync runs the sequence on
// its own goroutine and returns a future.
//
// Pipeline and Fold express the same short-circuit as a fold over an ordered
// list of steps returning Continue or ShortCircuit.
package macro
