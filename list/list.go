package list

import (
	"fmt"

	"github.com/grpc-boot/container"
)

// List is an ordered positional list. Indexes start at 0.
type List[T any] interface {
	Add(element T) (err error)
	// Insert places element before the one currently at index, 0 <= index <= Size().
	Insert(index int, element T) (err error)
	Set(index int, element T) (err error)
	Get(index int) (value T, err error)
	Remove(index int) (value T, err error)
	First() (value T, err error)
	Last() (value T, err error)
	Contains(element T) bool
	Size() int
	IsEmpty() bool
	Clear()
	Range(handler func(index int, value T) (handled bool))
	Values() []T
}

var (
	_ List[int] = (*LinkedList[int])(nil)
	_ List[int] = (*ArrayList[int])(nil)
)

func checkInsertIndex(index, size int) (err error) {
	if index < 0 || index > size {
		return fmt.Errorf("%w: insert index %d, size %d", container.ErrIndexOutOfBounds, index, size)
	}
	return nil
}

func collect[T any](l List[T]) []T {
	values := make([]T, 0, l.Size())
	l.Range(func(_ int, value T) (handled bool) {
		values = append(values, value)
		return false
	})
	return values
}
