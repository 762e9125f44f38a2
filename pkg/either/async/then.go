package async

import (
	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/core"
)

// Then continues p with f once it resolves. A rejection of p is passed
// through without calling f; a panic in f rejects the result.
func Then[T, U any](p *Pending[T], f func(value T) U) *Pending[U] {
	next, s := New[U]()
	p.Subscribe(func(v T, err error) {
		if err != nil {
			_ = s.Reject(err)
			return
		}
		s.run(func() (U, error) {
			return f(v), nil
		})
	})
	return next
}

// ThenAsync continues p with an asynchronous step and settles when the
// Pending returned by f does.
func ThenAsync[T, U any](p *Pending[T], f func(value T) *Pending[U]) *Pending[U] {
	next, s := New[U]()
	p.Subscribe(func(v T, err error) {
		if err != nil {
			_ = s.Reject(err)
			return
		}
		inner, err := call(func() *Pending[U] { return f(v) })
		if err != nil {
			_ = s.Reject(err)
			return
		}
		if inner == nil {
			_ = s.Reject(ErrNilPending)
			return
		}
		inner.Subscribe(s.settleFrom)
	})
	return next
}

func (s Settler[T]) settleFrom(v T, err error) {
	if err != nil {
		_ = s.Reject(err)
		return
	}
	_ = s.Resolve(v)
}

func call[T any](fn func() T) (res T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = either.FromPanic(p)
			core.Logger().V(1).Info("recovered panic", "error", err.Error())
		}
	}()
	return fn(), nil
}
