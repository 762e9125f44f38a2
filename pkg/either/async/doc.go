// Package async is the asynchronous layer over package either.
//
// A Pending[T] is a single-assignment pending computation: it resolves once
// to a value or rejects once with an error. The layer never schedules work
// by itself; callbacks hand it their own Pending values and the operations
// here return a Pending that settles when those do. Go and FromChan are the
// only functions that start a goroutine, and only because the caller asks
// for one.
//
// Common usage:
// - Go/New/Resolved/Rejected: create a Pending
// - Then/ThenAsync: continue after resolution, rejections pass through
// - Map/MapLeft/FlatMap/FlatMapLeft/Fold/OnLeft/OnRight: Either operations
//   with asynchronous callbacks
// - TryE: turn a Pending's rejection into a Left
//
// There is no cancellation. Await stops waiting when its context ends but
// the computation behind the Pending keeps running.
package async
