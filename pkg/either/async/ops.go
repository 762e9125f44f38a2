package async

import (
	"github.com/ib-77/either3/pkg/either"
)

// Unit is the completion type of OnLeft and OnRight.
type Unit = struct{}

// Map applies an asynchronous f to the success payload. A Left is returned
// as an already resolved Pending and f is not called.
func Map[L, R, S any](e either.Either[L, R], f func(r R) *Pending[S]) *Pending[either.Either[L, S]] {
	r, ok := e.RightValue()
	if !ok {
		l, _ := e.LeftValue()
		return Resolved(either.Left[S](l))
	}
	return Then(follow(f(r)), either.Right[L, S])
}

// MapLeft mirrors Map on the failure payload.
func MapLeft[L, R, S any](e either.Either[L, R], f func(l L) *Pending[S]) *Pending[either.Either[S, R]] {
	l, ok := e.LeftValue()
	if !ok {
		r, _ := e.RightValue()
		return Resolved(either.Right[S](r))
	}
	return Then(follow(f(l)), either.Left[R, S])
}

func FlatMap[L, R, S any](e either.Either[L, R], f func(r R) *Pending[either.Either[L, S]]) *Pending[either.Either[L, S]] {
	r, ok := e.RightValue()
	if !ok {
		l, _ := e.LeftValue()
		return Resolved(either.Left[S](l))
	}
	return follow(f(r))
}

func FlatMapLeft[L, R, S any](e either.Either[L, R], f func(l L) *Pending[either.Either[S, R]]) *Pending[either.Either[S, R]] {
	l, ok := e.LeftValue()
	if !ok {
		r, _ := e.RightValue()
		return Resolved(either.Right[S](r))
	}
	return follow(f(l))
}

// Fold invokes exactly one of the handlers. Use Lift to pass a synchronous
// handler for one of the sides.
func Fold[L, R, S any](e either.Either[L, R], onLeft func(l L) *Pending[S], onRight func(r R) *Pending[S]) *Pending[S] {
	return follow(either.Fold(e, onLeft, onRight))
}

// Lift adapts a synchronous function to the asynchronous handler shape.
func Lift[A, S any](f func(a A) S) func(a A) *Pending[S] {
	return func(a A) *Pending[S] {
		return Resolved(f(a))
	}
}

// OnLeft runs handler on a Left and completes when its Pending does. On a
// Right it returns an already completed Pending.
func OnLeft[L, R any](e either.Either[L, R], handler func(l L) *Pending[Unit]) *Pending[Unit] {
	l, ok := e.LeftValue()
	if !ok {
		return Resolved(Unit{})
	}
	return follow(handler(l))
}

func OnRight[L, R any](e either.Either[L, R], handler func(r R) *Pending[Unit]) *Pending[Unit] {
	r, ok := e.RightValue()
	if !ok {
		return Resolved(Unit{})
	}
	return follow(handler(r))
}

// TryE awaits the Pending returned by thunk without blocking: its value
// becomes a Right and its rejection reason a Left. A panic raised by thunk
// before it returns gives an already resolved Left.
func TryE[R any](thunk func() *Pending[R]) *Pending[either.Either[error, R]] {
	p, err := call(thunk)
	if err != nil {
		return Resolved(either.Left[R](err))
	}
	if p == nil {
		return Resolved(either.Left[R](ErrNilPending))
	}

	next, s := New[either.Either[error, R]]()
	p.Subscribe(func(v R, err error) {
		_ = s.Resolve(either.FromTuple(v, err))
	})
	return next
}

func follow[T any](p *Pending[T]) *Pending[T] {
	if p == nil {
		return Rejected[T](ErrNilPending)
	}
	return p
}
