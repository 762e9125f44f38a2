package solo

import (
	"github.com/ib-77/either3/pkg/either"
	"github.com/ib-77/either3/pkg/either/core"
)

// Try runs thunk and captures a panic as a Left. A panic value that is an
// error is kept as it is; any other value is wrapped in *either.PanicError.
func Try[R any](thunk func() R) (res either.Either[error, R]) {
	defer func() {
		if p := recover(); p != nil {
			res = either.Left[R](recovered(p))
		}
	}()

	return either.Right[error](thunk())
}

// TryE runs thunk and converts its (value, error) result. A returned error
// and a panic both become a Left.
func TryE[R any](thunk func() (R, error)) (res either.Either[error, R]) {
	defer func() {
		if p := recover(); p != nil {
			res = either.Left[R](recovered(p))
		}
	}()

	return either.FromTuple(thunk())
}

func recovered(p any) error {
	err := either.FromPanic(p)
	core.Logger().V(1).Info("recovered panic", "error", err.Error())
	return err
}
