package zip

// Tuple2 represents a pair of values.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.First, t.Second
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (t Tuple4[A, B, C, D]) Unpack() (A, B, C, D) {
	return t.First, t.Second, t.Third, t.Fourth
}

type Tuple5[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

func (t Tuple5[A, B, C, D, E]) Unpack() (A, B, C, D, E) {
	return t.First, t.Second, t.Third, t.Fourth, t.Fifth
}

type Tuple6[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

func (t Tuple6[A, B, C, D, E, F]) Unpack() (A, B, C, D, E, F) {
	return t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth
}

type Tuple7[A, B, C, D, E, F, G any] struct {
	First   A
	Second  B
	Third   C
	Fourth  D
	Fifth   E
	Sixth   F
	Seventh G
}

func (t Tuple7[A, B, C, D, E, F, G]) Unpack() (A, B, C, D, E, F, G) {
	return t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh
}

func pair[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{First: a, Second: b}
}

func extend3[A, B, C any](t Tuple2[A, B], c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{First: t.First, Second: t.Second, Third: c}
}

func extend4[A, B, C, D any](t Tuple3[A, B, C], d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{First: t.First, Second: t.Second, Third: t.Third, Fourth: d}
}

func extend5[A, B, C, D, E any](t Tuple4[A, B, C, D], e E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{First: t.First, Second: t.Second, Third: t.Third, Fourth: t.Fourth, Fifth: e}
}

func extend6[A, B, C, D, E, F any](t Tuple5[A, B, C, D, E], f F) Tuple6[A, B, C, D, E, F] {
	return Tuple6[A, B, C, D, E, F]{
		First: t.First, Second: t.Second, Third: t.Third, Fourth: t.Fourth, Fifth: t.Fifth, Sixth: f,
	}
}

func extend7[A, B, C, D, E, F, G any](t Tuple6[A, B, C, D, E, F], g G) Tuple7[A, B, C, D, E, F, G] {
	return Tuple7[A, B, C, D, E, F, G]{
		First: t.First, Second: t.Second, Third: t.Third, Fourth: t.Fourth, Fifth: t.Fifth, Sixth: t.Sixth, Seventh: g,
	}
}
