package zip

import (
	"github.com/ib-77/either3/pkg/either"
)

type accumulated[L, T any] = either.Either[either.NonEmpty[L], T]

func OrAccumulate2[L, A, B any](a either.Either[L, A], b either.Either[L, B]) accumulated[L, Tuple2[A, B]] {
	return Accumulate(Lift(a), b, pair[A, B])
}

func OrAccumulate3[L, A, B, C any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C]) accumulated[L, Tuple3[A, B, C]] {
	return Accumulate(OrAccumulate2(a, b), c, extend3[A, B, C])
}

func OrAccumulate4[L, A, B, C, D any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D]) accumulated[L, Tuple4[A, B, C, D]] {
	return Accumulate(OrAccumulate3(a, b, c), d, extend4[A, B, C, D])
}

func OrAccumulate5[L, A, B, C, D, E any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D], e either.Either[L, E]) accumulated[L, Tuple5[A, B, C, D, E]] {
	return Accumulate(OrAccumulate4(a, b, c, d), e, extend5[A, B, C, D, E])
}

func OrAccumulate6[L, A, B, C, D, E, F any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D], e either.Either[L, E],
	f either.Either[L, F]) accumulated[L, Tuple6[A, B, C, D, E, F]] {
	return Accumulate(OrAccumulate5(a, b, c, d, e), f, extend6[A, B, C, D, E, F])
}

func OrAccumulate7[L, A, B, C, D, E, F, G any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D], e either.Either[L, E],
	f either.Either[L, F], g either.Either[L, G]) accumulated[L, Tuple7[A, B, C, D, E, F, G]] {
	return Accumulate(OrAccumulate6(a, b, c, d, e, f), g, extend7[A, B, C, D, E, F, G])
}
