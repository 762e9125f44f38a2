package solo

import (
	"slices"

	"github.com/ib-77/either3/pkg/either"
)

// EnsureExists returns Right(*value) when value is non-nil, Left(failure) otherwise.
func EnsureExists[T, L any](value *T, failure L) either.Either[L, T] {
	if value == nil {
		return either.Left[T](failure)
	}
	return either.Right[L](*value)
}

// EnsurePresent is EnsureExists for values that are nil through an
// interface, map, slice, chan or func rather than a pointer.
func EnsurePresent[T, L any](value T, failure L) either.Either[L, T] {
	if either.IsNil(value) {
		return either.Left[T](failure)
	}
	return either.Right[L](value)
}

// EnsureContains returns Right(search) when collection holds an element
// equal to search. A nil collection is a failure.
func EnsureContains[T comparable, L any](collection []T, search T, failure L) either.Either[L, T] {
	if collection == nil || !slices.Contains(collection, search) {
		return either.Left[T](failure)
	}
	return either.Right[L](search)
}
