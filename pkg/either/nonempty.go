package either

import (
	"fmt"
	"iter"
)

// NonEmpty is an ordered sequence holding at least one element. It is built
// with NonEmptyOf or IsNotEmpty and never changes afterwards. The zero value
// is not a valid NonEmpty.
type NonEmpty[T any] struct {
	items []T
}

func NonEmptyOf[T any](head T, tail ...T) NonEmpty[T] {
	items := make([]T, 0, len(tail)+1)
	items = append(items, head)
	items = append(items, tail...)
	return NonEmpty[T]{items: items}
}

// IsNotEmpty reports whether s has at least one element and, if so, returns
// it as a NonEmpty. The returned value does not share memory with s.
func IsNotEmpty[T any](s []T) (NonEmpty[T], bool) {
	if len(s) == 0 {
		return NonEmpty[T]{}, false
	}
	items := make([]T, len(s))
	copy(items, s)
	return NonEmpty[T]{items: items}, true
}

func (n NonEmpty[T]) Head() T {
	return n.items[0]
}

func (n NonEmpty[T]) Len() int {
	return len(n.items)
}

// Items returns a copy of the elements.
func (n NonEmpty[T]) Items() []T {
	items := make([]T, len(n.items))
	copy(items, n.items)
	return items
}

// Append returns a new sequence with values added at the end.
func (n NonEmpty[T]) Append(values ...T) NonEmpty[T] {
	items := make([]T, 0, len(n.items)+len(values))
	items = append(items, n.items...)
	items = append(items, values...)
	return NonEmpty[T]{items: items}
}

func (n NonEmpty[T]) Concat(other NonEmpty[T]) NonEmpty[T] {
	return n.Append(other.items...)
}

func (n NonEmpty[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range n.items {
			if !yield(v) {
				return
			}
		}
	}
}

func (n NonEmpty[T]) String() string {
	return fmt.Sprintf("%v", n.items)
}
