package either

// Map transforms the success payload. f is never called for a Left, which is
// passed through with its payload untouched.
func Map[L, R, S any](e Either[L, R], f func(r R) S) Either[L, S] {
	if e.variant == VariantRight {
		return Right[L](f(e.right))
	}
	return Left[S](e.left)
}

// MapLeft is the mirror of Map on the failure channel.
func MapLeft[L, R, S any](e Either[L, R], f func(l L) S) Either[S, R] {
	if e.variant == VariantLeft {
		return Left[R](f(e.left))
	}
	return Right[S](e.right)
}

// FlatMap chains a computation that may itself fail.
func FlatMap[L, R, S any](e Either[L, R], f func(r R) Either[L, S]) Either[L, S] {
	if e.variant == VariantRight {
		return f(e.right)
	}
	return Left[S](e.left)
}

// FlatMapLeft chains a recovery step on the failure channel.
func FlatMapLeft[L, R, S any](e Either[L, R], f func(l L) Either[S, R]) Either[S, R] {
	if e.variant == VariantLeft {
		return f(e.left)
	}
	return Right[S](e.right)
}

// Fold reduces e to a single value. Exactly one of the handlers is invoked.
func Fold[L, R, S any](e Either[L, R], onLeft func(l L) S, onRight func(r R) S) S {
	if e.variant == VariantRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Merge returns the payload of whichever side is held.
func Merge[T any](e Either[T, T]) T {
	if e.variant == VariantRight {
		return e.right
	}
	return e.left
}

// FromTuple converts a Go (value, error) pair.
func FromTuple[R any](r R, err error) Either[error, R] {
	if err != nil {
		return Left[R](err)
	}
	return Right[error](r)
}

// ToTuple is the inverse of FromTuple. A Left holding a nil error is
// reported as ErrNilLeft so that a failure never reads as success.
func ToTuple[R any](e Either[error, R]) (R, error) {
	if e.variant == VariantRight {
		return e.right, nil
	}
	var zero R
	if e.left == nil {
		return zero, ErrNilLeft
	}
	return zero, e.left
}

// From rebuilds an Either from anything that exposes both sides, such as a chain.
func From[L, R any](p Provider[L, R]) Either[L, R] {
	if r, ok := p.RightValue(); ok {
		return Right[L](r)
	}
	l, _ := p.LeftValue()
	return Left[R](l)
}
