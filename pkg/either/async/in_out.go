package async

import (
	"context"
	"errors"

	"github.com/ib-77/either3/pkg/either"
)

var ErrClosed = errors.New("async: channel closed without a value")

// FromChan resolves with the first value received from ch. It rejects with
// ErrClosed if ch is closed first, or with ctx.Err() if ctx ends first.
func FromChan[T any](ctx context.Context, ch <-chan T) *Pending[T] {
	p, s := New[T]()

	go func() {
		select {
		case v, ok := <-ch:
			if !ok {
				_ = s.Reject(ErrClosed)
				return
			}
			_ = s.Resolve(v)
		case <-ctx.Done():
			_ = s.Reject(ctx.Err())
		}
	}()

	return p
}

// Chan delivers the outcome of p as a single Either and then closes.
func (p *Pending[T]) Chan() <-chan either.Either[error, T] {
	out := make(chan either.Either[error, T], 1)
	p.Subscribe(func(v T, err error) {
		out <- either.FromTuple(v, err)
		close(out)
	})
	return out
}
