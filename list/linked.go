package list

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/grpc-boot/container"
)

// LinkedList is a List over singly linked nodes with a tail reference for O(1) appends.
type LinkedList[T any] struct {
	head *container.SingleNode[T]
	tail *container.SingleNode[T]
	size int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func OfLinked[T any](elements ...T) (l *LinkedList[T], err error) {
	l = NewLinkedList[T]()
	for _, element := range elements {
		if err = l.Add(element); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *LinkedList[T]) Add(element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	l.append(container.NewSingleNode(element, nil))
	return nil
}

func (l *LinkedList[T]) append(node *container.SingleNode[T]) {
	if l.tail == nil {
		l.head, l.tail = node, node
	} else {
		l.tail.Next = node
		l.tail = node
	}
	l.size++
}

func (l *LinkedList[T]) Insert(index int, element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	if err = checkInsertIndex(index, l.size); err != nil {
		return err
	}

	node := container.NewSingleNode(element, nil)
	switch index {
	case l.size:
		l.append(node)
		return nil
	case 0:
		node.Next = l.head
		l.head = node
	default:
		prev := l.nodeAt(index - 1)
		node.Next = prev.Next
		prev.Next = node
	}
	l.size++
	return nil
}

func (l *LinkedList[T]) Set(index int, element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	if err = container.CheckIndex(index, l.size); err != nil {
		return err
	}

	l.nodeAt(index).Value = element
	return nil
}

func (l *LinkedList[T]) Get(index int) (value T, err error) {
	if err = container.CheckIndex(index, l.size); err != nil {
		return value, err
	}

	return l.nodeAt(index).Value, nil
}

func (l *LinkedList[T]) Remove(index int) (value T, err error) {
	if err = container.CheckIndex(index, l.size); err != nil {
		return value, err
	}

	var removed *container.SingleNode[T]
	if index == 0 {
		removed = l.head
		l.head = removed.Next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		prev := l.nodeAt(index - 1)
		removed = prev.Next
		prev.Next = removed.Next
		if removed == l.tail {
			l.tail = prev
		}
	}

	removed.Next = nil
	l.size--
	return removed.Value, nil
}

func (l *LinkedList[T]) First() (value T, err error) {
	if l.head == nil {
		return value, container.ErrNoSuchElement
	}
	return l.head.Value, nil
}

func (l *LinkedList[T]) Last() (value T, err error) {
	if l.tail == nil {
		return value, container.ErrNoSuchElement
	}
	return l.tail.Value, nil
}

func (l *LinkedList[T]) Contains(element T) bool {
	for node := l.head; node != nil; node = node.Next {
		if container.Equal(node.Value, element) {
			return true
		}
	}
	return false
}

func (l *LinkedList[T]) Size() int {
	return l.size
}

func (l *LinkedList[T]) IsEmpty() bool {
	return l.size == 0
}

func (l *LinkedList[T]) Clear() {
	l.head, l.tail = nil, nil
	l.size = 0
}

func (l *LinkedList[T]) Range(handler func(index int, value T) (handled bool)) {
	index := 0
	for node := l.head; node != nil; node = node.Next {
		if handler(index, node.Value) {
			return
		}
		index++
	}
}

func (l *LinkedList[T]) Values() []T {
	return collect[T](l)
}

// nodeAt expects a checked index.
func (l *LinkedList[T]) nodeAt(index int) *container.SingleNode[T] {
	node := l.head
	for i := 0; i < index; i++ {
		node = node.Next
	}
	return node
}

func (l *LinkedList[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(l.Values())
}

func (l *LinkedList[T]) UnmarshalJSON(data []byte) (err error) {
	var values []T
	if err = jsoniter.Unmarshal(data, &values); err != nil {
		return err
	}
	return l.load(values)
}

func (l *LinkedList[T]) MarshalYAML() (interface{}, error) {
	return l.Values(), nil
}

func (l *LinkedList[T]) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var values []T
	if err = unmarshal(&values); err != nil {
		return err
	}
	return l.load(values)
}

func (l *LinkedList[T]) load(values []T) (err error) {
	fresh, err := OfLinked(values...)
	if err != nil {
		return err
	}
	*l = *fresh
	return nil
}
