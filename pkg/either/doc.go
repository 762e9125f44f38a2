// Package either provides Either[L, R], a two-armed value holding a failure
// (Left) or a success (Right), together with its transformations.
//
// Key operations:
// - Left/Right: construct a value
// - Map/FlatMap: transform or chain the success side, Lefts pass through
// - MapLeft/FlatMapLeft: the same on the failure side
// - Fold/Merge: eliminate an Either into a single value
// - GetOrDefault/GetOrElse/GetOrNull: extract the success payload
// - Swap: exchange the two sides
//
// NonEmpty[T] is the sequence type used for accumulated failures; see the
// zip and solo packages for the combinators producing it.
package either
