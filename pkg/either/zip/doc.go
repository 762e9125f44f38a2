// Package zip combines two to seven Either values that share a failure type
// into one Either of a tuple holding every success value in argument order.
//
// - OrBind2..OrBind7 fail fast and report the first Left.
// - OrAccumulate2..OrAccumulate7 report every Left, in order, as an
//   either.NonEmpty.
//
// Each arity is a left fold over the pairwise combinators Bind and
// Accumulate, which can also be called directly to zip longer lists into
// caller-defined types.
package zip
