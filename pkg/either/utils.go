package either

import (
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or a typed nil held in an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// SplitErrors unpacks an error built with errors.Join. A nil error yields an
// empty slice and any other error a single-element slice.
func SplitErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinLefts collapses accumulated failures into one error.
func JoinLefts(errs NonEmpty[error]) error {
	if errs.Len() == 1 {
		return errs.Head()
	}
	return errors.Join(errs.items...)
}
