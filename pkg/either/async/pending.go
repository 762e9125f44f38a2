package async

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/core"
)

var (
	ErrAlreadySettled = errors.New("async: pending already settled")
	ErrNilReason      = errors.New("async: rejected with nil reason")
	ErrNilPending     = errors.New("async: callback returned nil pending")
)

// Pending is a computation that resolves to a T or rejects with an error,
// exactly once. It is safe for concurrent use.
type Pending[T any] struct {
	id        uuid.UUID
	createdAt time.Time

	mu        sync.Mutex
	done      chan struct{}
	settled   bool
	value     T
	err       error
	callbacks []func(T, error)
}

// Settler is the write side of a Pending created with New.
type Settler[T any] struct {
	p *Pending[T]
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		done:      make(chan struct{}),
	}
}

// New returns an unsettled Pending and the Settler that completes it.
func New[T any]() (*Pending[T], Settler[T]) {
	p := newPending[T]()
	return p, Settler[T]{p: p}
}

func Resolved[T any](value T) *Pending[T] {
	p := newPending[T]()
	_ = p.settle(value, nil)
	return p
}

func Rejected[T any](err error) *Pending[T] {
	p := newPending[T]()
	var zero T
	_ = p.settle(zero, nonNil(err))
	return p
}

// Go runs fn in a new goroutine. A panic in fn rejects the Pending.
func Go[T any](fn func() (T, error)) *Pending[T] {
	p, s := New[T]()
	go s.run(fn)
	return p
}

// Resolve settles the Pending with value. It returns ErrAlreadySettled if
// the Pending was settled before.
func (s Settler[T]) Resolve(value T) error {
	return s.p.settle(value, nil)
}

// Reject settles the Pending with err. A nil err is replaced by ErrNilReason.
func (s Settler[T]) Reject(err error) error {
	var zero T
	return s.p.settle(zero, nonNil(err))
}

func (s Settler[T]) run(fn func() (T, error)) {
	defer func() {
		if p := recover(); p != nil {
			err := either.FromPanic(p)
			core.Logger().V(1).Info("recovered panic", "id", s.p.id.String(), "error", err.Error())
			_ = s.Reject(err)
		}
	}()

	v, err := fn()
	if err != nil {
		_ = s.Reject(err)
		return
	}
	_ = s.Resolve(v)
}

func (p *Pending[T]) ID() uuid.UUID {
	return p.id
}

func (p *Pending[T]) CreatedAt() time.Time {
	return p.createdAt
}

// Done is closed once the Pending settles.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

func (p *Pending[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// Await blocks until the Pending settles or ctx ends. When ctx ends first
// it returns ctx.Err(); the Pending itself is left untouched.
func (p *Pending[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	default:
	}

	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		core.LoggerFrom(ctx).V(1).Info("await interrupted", "id", p.id.String(), "error", ctx.Err().Error())
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitEither is Await with its outcome folded into an Either.
func (p *Pending[T]) AwaitEither(ctx context.Context) either.Either[error, T] {
	return either.FromTuple(p.Await(ctx))
}

// Subscribe registers callback to run once the Pending settles. If it has
// already settled, callback runs immediately on the calling goroutine;
// otherwise it runs on the goroutine that settles it.
func (p *Pending[T]) Subscribe(callback func(value T, err error)) {
	p.mu.Lock()
	if !p.settled {
		p.callbacks = append(p.callbacks, callback)
		p.mu.Unlock()
		return
	}
	v, err := p.value, p.err
	p.mu.Unlock()

	callback(v, err)
}

func (p *Pending[T]) settle(value T, err error) error {
	p.mu.Lock()
	if p.settled {
		p.mu.Unlock()
		return ErrAlreadySettled
	}
	p.settled = true
	p.value = value
	p.err = err
	callbacks := p.callbacks
	p.callbacks = nil
	close(p.done)
	p.mu.Unlock()

	core.Logger().V(1).Info("pending settled", "id", p.id.String(), "rejected", err != nil)

	for _, callback := range callbacks {
		callback(value, err)
	}
	return nil
}

func nonNil(err error) error {
	if err == nil {
		return ErrNilReason
	}
	return err
}
