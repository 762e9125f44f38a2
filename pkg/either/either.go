package either

import (
	"fmt"
)

type Variant uint8

const (
	VariantLeft Variant = iota
	VariantRight
)

func (v Variant) String() string {
	switch v {
	case VariantLeft:
		return "Left"
	case VariantRight:
		return "Right"
	default:
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
}

// Either holds exactly one of a failure value (Left) or a success value (Right).
// Values are immutable; every operation returns a new Either.
// The zero value is a Left holding the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	variant Variant
}

// Left constructs the failure variant. The success type comes first so
// that the payload type is inferred: Left[int]("boom").
func Left[R, L any](l L) Either[L, R] {
	return Either[L, R]{
		left:    l,
		variant: VariantLeft,
	}
}

// Right constructs the success variant: Right[string](42).
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{
		right:   r,
		variant: VariantRight,
	}
}

func (e Either[L, R]) Variant() Variant {
	return e.variant
}

func (e Either[L, R]) IsLeft() bool {
	return e.variant == VariantLeft
}

func (e Either[L, R]) IsRight() bool {
	return e.variant == VariantRight
}

// LeftValue returns the failure payload and true when e is a Left.
func (e Either[L, R]) LeftValue() (L, bool) {
	if e.variant == VariantLeft {
		return e.left, true
	}
	var zero L
	return zero, false
}

// RightValue returns the success payload and true when e is a Right.
func (e Either[L, R]) RightValue() (R, bool) {
	if e.variant == VariantRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// OnLeft runs handler with the failure payload; it is a no-op on a Right.
func (e Either[L, R]) OnLeft(handler func(l L)) {
	if e.variant == VariantLeft {
		handler(e.left)
	}
}

// OnRight runs handler with the success payload; it is a no-op on a Left.
func (e Either[L, R]) OnRight(handler func(r R)) {
	if e.variant == VariantRight {
		handler(e.right)
	}
}

func (e Either[L, R]) GetOrDefault(defaultValue R) R {
	if e.variant == VariantRight {
		return e.right
	}
	return defaultValue
}

// GetOrElse returns the success payload. On a Left it calls handler, which
// must not return: it has to panic, call runtime.Goexit or exit the process.
// A handler that returns anyway makes GetOrElse panic with an error wrapping
// ErrHandlerReturned.
func (e Either[L, R]) GetOrElse(handler func(l L)) R {
	if e.variant == VariantRight {
		return e.right
	}
	handler(e.left)
	panic(fmt.Errorf("%w: left=%v", ErrHandlerReturned, e.left))
}

// GetOrNull returns a pointer to a copy of the success payload, or nil on a Left.
func (e Either[L, R]) GetOrNull() *R {
	if e.variant == VariantRight {
		r := e.right
		return &r
	}
	return nil
}

// Swap exchanges the channels: Left(x) becomes Right(x) and Right(y) becomes Left(y).
func (e Either[L, R]) Swap() Either[R, L] {
	if e.variant == VariantRight {
		return Left[L](e.right)
	}
	return Right[R](e.left)
}

func (e Either[L, R]) String() string {
	if e.variant == VariantRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
