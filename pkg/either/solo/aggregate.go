package solo

import (
	"github.com/ib-77/either3/pkg/either"
)

// SeparateEithers splits eithers into their Left and Right payloads. Both
// slices are always non-nil and keep the input order.
func SeparateEithers[L, R any](eithers []either.Either[L, R]) ([]L, []R) {
	lefts := make([]L, 0, len(eithers))
	rights := make([]R, 0, len(eithers))

	for _, e := range eithers {
		if r, ok := e.RightValue(); ok {
			rights = append(rights, r)
			continue
		}
		l, _ := e.LeftValue()
		lefts = append(lefts, l)
	}

	return lefts, rights
}

// Accumulate returns every Left payload in order when at least one input
// failed, otherwise every Right payload in order. An empty input gives an
// empty Right.
func Accumulate[L, R any](eithers []either.Either[L, R]) either.Either[either.NonEmpty[L], []R] {
	lefts, rights := SeparateEithers(eithers)

	if failures, ok := either.IsNotEmpty(lefts); ok {
		return either.Left[[]R](failures)
	}
	return either.Right[either.NonEmpty[L]](rights)
}

// Sequence is the fail-fast counterpart of Accumulate: it stops at the
// first Left.
func Sequence[L, R any](eithers []either.Either[L, R]) either.Either[L, []R] {
	values := make([]R, 0, len(eithers))
	for _, e := range eithers {
		r, ok := e.RightValue()
		if !ok {
			l, _ := e.LeftValue()
			return either.Left[[]R](l)
		}
		values = append(values, r)
	}
	return either.Right[L](values)
}

// Traverse maps items through f and sequences the results, stopping at the
// first Left. f is not called for the items after it.
func Traverse[A, L, B any](items []A, f func(a A) either.Either[L, B]) either.Either[L, []B] {
	values := make([]B, 0, len(items))
	for _, item := range items {
		res := f(item)
		b, ok := res.RightValue()
		if !ok {
			l, _ := res.LeftValue()
			return either.Left[[]B](l)
		}
		values = append(values, b)
	}
	return either.Right[L](values)
}

// Validate runs every check against value and collects all failures.
// Checks see the original value, not the output of earlier checks.
func Validate[T, L any](value T, checks ...func(v T) either.Either[L, T]) either.Either[either.NonEmpty[L], T] {
	failures := make([]L, 0)
	for _, check := range checks {
		check(value).OnLeft(func(l L) {
			failures = append(failures, l)
		})
	}

	if accumulated, ok := either.IsNotEmpty(failures); ok {
		return either.Left[T](accumulated)
	}
	return either.Right[either.NonEmpty[L]](value)
}
