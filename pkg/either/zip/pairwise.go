package zip

import (
	"github.com/ib-77/either3/pkg/either"
)

// Lift seeds an accumulating fold: a Left becomes a single-element sequence.
func Lift[L, A any](a either.Either[L, A]) either.Either[either.NonEmpty[L], A] {
	return either.MapLeft(a, func(l L) either.NonEmpty[L] {
		return either.NonEmptyOf(l)
	})
}

// Bind joins acc and b when both are Right. Otherwise it returns acc's Left
// if there is one, else b's.
func Bind[L, T, B, U any](acc either.Either[L, T], b either.Either[L, B],
	join func(t T, b B) U) either.Either[L, U] {

	return either.FlatMap(acc, func(t T) either.Either[L, U] {
		return either.Map(b, func(v B) U {
			return join(t, v)
		})
	})
}

// Accumulate folds b into acc:
//
//	Right(t), Right(v) -> Right(join(t, v))
//	Right(t), Left(l)  -> Left([l])
//	Left(s),  Right(v) -> Left(s)
//	Left(s),  Left(l)  -> Left(s ++ [l])
func Accumulate[L, T, B, U any](acc either.Either[either.NonEmpty[L], T], b either.Either[L, B],
	join func(t T, b B) U) either.Either[either.NonEmpty[L], U] {

	return either.Fold(acc,
		func(failures either.NonEmpty[L]) either.Either[either.NonEmpty[L], U] {
			return either.Fold(b,
				func(l L) either.Either[either.NonEmpty[L], U] {
					return either.Left[U](failures.Append(l))
				},
				func(B) either.Either[either.NonEmpty[L], U] {
					return either.Left[U](failures)
				})
		},
		func(t T) either.Either[either.NonEmpty[L], U] {
			return either.Fold(b,
				func(l L) either.Either[either.NonEmpty[L], U] {
					return either.Left[U](either.NonEmptyOf(l))
				},
				func(v B) either.Either[either.NonEmpty[L], U] {
					return either.Right[either.NonEmpty[L]](join(t, v))
				})
		})
}
