package zip

import (
	"github.com/ib-77/either3/pkg/either"
)

func OrBind2[L, A, B any](a either.Either[L, A], b either.Either[L, B]) either.Either[L, Tuple2[A, B]] {
	return Bind(a, b, pair[A, B])
}

func OrBind3[L, A, B, C any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C]) either.Either[L, Tuple3[A, B, C]] {
	return Bind(OrBind2(a, b), c, extend3[A, B, C])
}

func OrBind4[L, A, B, C, D any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D]) either.Either[L, Tuple4[A, B, C, D]] {
	return Bind(OrBind3(a, b, c), d, extend4[A, B, C, D])
}

func OrBind5[L, A, B, C, D, E any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D], e either.Either[L, E]) either.Either[L, Tuple5[A, B, C, D, E]] {
	return Bind(OrBind4(a, b, c, d), e, extend5[A, B, C, D, E])
}

func OrBind6[L, A, B, C, D, E, F any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D], e either.Either[L, E],
	f either.Either[L, F]) either.Either[L, Tuple6[A, B, C, D, E, F]] {
	return Bind(OrBind5(a, b, c, d, e), f, extend6[A, B, C, D, E, F])
}

func OrBind7[L, A, B, C, D, E, F, G any](a either.Either[L, A], b either.Either[L, B],
	c either.Either[L, C], d either.Either[L, D], e either.Either[L, E],
	f either.Either[L, F], g either.Either[L, G]) either.Either[L, Tuple7[A, B, C, D, E, F, G]] {
	return Bind(OrBind6(a, b, c, d, e, f), g, extend7[A, B, C, D, E, F, G])
}
