// Package rop holds the values shared by the trycatch and macro packages:
// the Outcome tuple returned by the trycatch adapters and ThrownError, the
// uniform wrapper around anything recovered from a panic or a rejected
// future.
//
// An Outcome is either Ok(result) or Err(*ThrownError). The discrimination is
// made on the failure channel only: a task that returns an error value
// produces an Ok outcome holding that error.
package rop
