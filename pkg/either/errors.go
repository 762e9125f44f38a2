package either

import (
	"errors"
	"fmt"
)

var (
	// ErrHandlerReturned is raised by GetOrElse when its handler returns
	// instead of aborting.
	ErrHandlerReturned = errors.New("either: GetOrElse handler returned")

	ErrNilLeft = errors.New("either: left holds a nil error")
)

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// FromPanic turns a value obtained from recover into an error. Error values
// are returned as they are.
func FromPanic(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
