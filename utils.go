package container

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrEmptyStack       = errors.New("empty stack")
	ErrNoSuchElement    = errors.New("no such element")
)

// ErrNilElement is returned by every insertion that receives a nil element.
var ErrNilElement = fmt.Errorf("%w: nil element", ErrInvalidArgument)

// IsNil reports whether value is nil itself or a nil pointer, map, slice, func or chan.
func IsNil(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

func Equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// CheckIndex validates 0 <= index < length.
func CheckIndex(index, length int) (err error) {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, index, length)
	}
	return nil
}

func IsKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}
