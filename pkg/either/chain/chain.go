package chain

import (
	"github.com/ib-77/either3/pkg/either"
)

// Chain wraps an either.Either to enable fluent chaining
type Chain[L, R any] struct {
	result either.Either[L, R]
}

var _ either.Provider[error, int] = (*Chain[error, int])(nil)

// Start creates a new chain from an either.Either
func Start[L, R any](result either.Either[L, R]) *Chain[L, R] {
	return &Chain[L, R]{
		result: result,
	}
}

// FromRight creates a new chain from a success value
func FromRight[L, R any](value R) *Chain[L, R] {
	return Start(either.Right[L](value))
}

// FromLeft creates a new chain from a failure value
func FromLeft[R, L any](failure L) *Chain[L, R] {
	return Start(either.Left[R](failure))
}

// Result returns the underlying either.Either
func (c *Chain[L, R]) Result() either.Either[L, R] {
	return c.result
}

func (c *Chain[L, R]) IsLeft() bool {
	return c.result.IsLeft()
}

func (c *Chain[L, R]) IsRight() bool {
	return c.result.IsRight()
}

func (c *Chain[L, R]) LeftValue() (L, bool) {
	return c.result.LeftValue()
}

func (c *Chain[L, R]) RightValue() (R, bool) {
	return c.result.RightValue()
}

// Then chains a step that returns either.Either[L, R]
func (c *Chain[L, R]) Then(onRight func(r R) either.Either[L, R]) *Chain[L, R] {
	return Start(either.FlatMap(c.result, onRight))
}

// Map chains a pure transformation of the success value
func (c *Chain[L, R]) Map(onRight func(r R) R) *Chain[L, R] {
	return Start(either.Map(c.result, onRight))
}

func (c *Chain[L, R]) MapLeft(onLeft func(l L) L) *Chain[L, R] {
	return Start(either.MapLeft(c.result, onLeft))
}

// Recover chains a step that runs only for a Left
func (c *Chain[L, R]) Recover(onLeft func(l L) either.Either[L, R]) *Chain[L, R] {
	return Start(either.FlatMapLeft(c.result, onLeft))
}

// Ensure performs side effects without changing the result. Either
// callback may be nil.
func (c *Chain[L, R]) Ensure(onRight func(r R), onLeft func(l L)) *Chain[L, R] {
	if onRight != nil {
		c.result.OnRight(onRight)
	}
	if onLeft != nil {
		c.result.OnLeft(onLeft)
	}
	return c
}

// To chains a step that changes the success type
func To[L, R, S any](c *Chain[L, R], onRight func(r R) either.Either[L, S]) *Chain[L, S] {
	return Start(either.FlatMap(c.result, onRight))
}

// Transform chains a pure transformation that changes the success type
func Transform[L, R, S any](c *Chain[L, R], onRight func(r R) S) *Chain[L, S] {
	return Start(either.Map(c.result, onRight))
}

// Finally collapses the chain into a final value using either.Fold
func Finally[L, R, S any](c *Chain[L, R], onLeft func(l L) S, onRight func(r R) S) S {
	return either.Fold(c.result, onLeft, onRight)
}
