// Package solo holds the synchronous helpers that produce Either values from
// plain Go values: validation lifters (EnsureExists, EnsureContains), the
// panic and error bridge (Try, TryE) and batch aggregation (Accumulate,
// SeparateEithers, Sequence, Traverse, Validate).
//
// For asynchronous callbacks see package async.
package solo
