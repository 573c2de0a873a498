// Package async provides Future, a value that settles once on another
// goroutine. It plays the part of a promise for the trycatch and macro
// packages:
// - New: a pending future with resolve/reject functions
// - Go: run a function on a goroutine, rejecting on panic
// - Resolved/Rejected: already settled futures
// - Await: block until settled or the context is done
// - Then: chain a transformation on resolution
package async
