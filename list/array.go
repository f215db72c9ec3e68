package list

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/grpc-boot/container"
)

// ArrayList is a List over a growable buffer. len(elements) is the size and
// cap(elements) the capacity, growth is done by hand at about 1.5x.
type ArrayList[T any] struct {
	elements []T
}

func NewArrayList[T any]() *ArrayList[T] {
	return &ArrayList[T]{elements: make([]T, 0, container.DefaultCapacity)}
}

func NewArrayListWithCapacity[T any](capacity int) (l *ArrayList[T], err error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", container.ErrInvalidArgument, capacity)
	}
	return &ArrayList[T]{elements: make([]T, 0, capacity)}, nil
}

func OfArray[T any](elements ...T) (l *ArrayList[T], err error) {
	l = NewArrayList[T]()
	for _, element := range elements {
		if err = l.Add(element); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *ArrayList[T]) Add(element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	l.growIfFull()
	l.elements = append(l.elements, element)
	return nil
}

func (l *ArrayList[T]) Insert(index int, element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	size := len(l.elements)
	if err = checkInsertIndex(index, size); err != nil {
		return err
	}

	l.growIfFull()
	l.elements = l.elements[:size+1]
	copy(l.elements[index+1:], l.elements[index:size])
	l.elements[index] = element
	return nil
}

func (l *ArrayList[T]) Set(index int, element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	if err = container.CheckIndex(index, len(l.elements)); err != nil {
		return err
	}

	l.elements[index] = element
	return nil
}

func (l *ArrayList[T]) Get(index int) (value T, err error) {
	if err = container.CheckIndex(index, len(l.elements)); err != nil {
		return value, err
	}
	return l.elements[index], nil
}

func (l *ArrayList[T]) Remove(index int) (value T, err error) {
	size := len(l.elements)
	if err = container.CheckIndex(index, size); err != nil {
		return value, err
	}

	value = l.elements[index]
	copy(l.elements[index:], l.elements[index+1:])

	//清空空出的槽位，避免持有引用
	var zero T
	l.elements[size-1] = zero
	l.elements = l.elements[:size-1]
	return value, nil
}

func (l *ArrayList[T]) First() (value T, err error) {
	if len(l.elements) == 0 {
		return value, container.ErrNoSuchElement
	}
	return l.elements[0], nil
}

func (l *ArrayList[T]) Last() (value T, err error) {
	if len(l.elements) == 0 {
		return value, container.ErrNoSuchElement
	}
	return l.elements[len(l.elements)-1], nil
}

func (l *ArrayList[T]) Contains(element T) bool {
	for index := range l.elements {
		if container.Equal(l.elements[index], element) {
			return true
		}
	}
	return false
}

func (l *ArrayList[T]) Size() int {
	return len(l.elements)
}

func (l *ArrayList[T]) Capacity() int {
	return cap(l.elements)
}

func (l *ArrayList[T]) IsEmpty() bool {
	return len(l.elements) == 0
}

// Clear drops the buffer and starts over at the default capacity.
func (l *ArrayList[T]) Clear() {
	l.elements = make([]T, 0, container.DefaultCapacity)
}

func (l *ArrayList[T]) Range(handler func(index int, value T) (handled bool)) {
	for index := range l.elements {
		if handler(index, l.elements[index]) {
			return
		}
	}
}

func (l *ArrayList[T]) Values() []T {
	return collect[T](l)
}

func (l *ArrayList[T]) growIfFull() {
	size := len(l.elements)
	if size < cap(l.elements) {
		return
	}

	grown := make([]T, size, int(float64(size)*1.5)+1)
	copy(grown, l.elements)
	l.elements = grown
}

func (l *ArrayList[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(l.Values())
}

func (l *ArrayList[T]) UnmarshalJSON(data []byte) (err error) {
	var values []T
	if err = jsoniter.Unmarshal(data, &values); err != nil {
		return err
	}
	return l.load(values)
}

func (l *ArrayList[T]) MarshalYAML() (interface{}, error) {
	return l.Values(), nil
}

func (l *ArrayList[T]) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var values []T
	if err = unmarshal(&values); err != nil {
		return err
	}
	return l.load(values)
}

func (l *ArrayList[T]) load(values []T) (err error) {
	fresh, err := OfArray(values...)
	if err != nil {
		return err
	}
	*l = *fresh
	return nil
}
