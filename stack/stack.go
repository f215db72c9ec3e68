package stack

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/grpc-boot/container"
)

// LinkedStack is a LIFO stack over singly linked nodes. It is not safe for concurrent use.
type LinkedStack[T any] struct {
	head *container.SingleNode[T]
	size int
}

func New[T any]() *LinkedStack[T] {
	return &LinkedStack[T]{}
}

// Of pushes elements in the order given, so the last one ends up on top.
func Of[T any](elements ...T) (s *LinkedStack[T], err error) {
	s = New[T]()
	for _, element := range elements {
		if err = s.Push(element); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *LinkedStack[T]) Push(element T) (err error) {
	if container.IsNil(element) {
		return container.ErrNilElement
	}

	s.head = container.NewSingleNode(element, s.head)
	s.size++
	return nil
}

func (s *LinkedStack[T]) Pop() (value T, err error) {
	if s.head == nil {
		return value, container.ErrEmptyStack
	}

	node := s.head
	s.head = node.Next
	node.Next = nil
	s.size--
	return node.Value, nil
}

func (s *LinkedStack[T]) Peek() (value T, err error) {
	if s.head == nil {
		return value, container.ErrEmptyStack
	}
	return s.head.Value, nil
}

func (s *LinkedStack[T]) Size() int {
	return s.size
}

func (s *LinkedStack[T]) IsEmpty() bool {
	return s.size == 0
}

// Range walks from top to bottom until handler reports handled.
func (s *LinkedStack[T]) Range(handler func(value T) (handled bool)) {
	for node := s.head; node != nil; node = node.Next {
		if handler(node.Value) {
			return
		}
	}
}

func (s *LinkedStack[T]) Values() []T {
	values := make([]T, 0, s.size)
	s.Range(func(value T) (handled bool) {
		values = append(values, value)
		return false
	})
	return values
}

func (s *LinkedStack[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(s.Values())
}

func (s *LinkedStack[T]) UnmarshalJSON(data []byte) (err error) {
	var values []T
	if err = jsoniter.Unmarshal(data, &values); err != nil {
		return err
	}
	return s.load(values)
}

func (s *LinkedStack[T]) MarshalYAML() (interface{}, error) {
	return s.Values(), nil
}

func (s *LinkedStack[T]) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var values []T
	if err = unmarshal(&values); err != nil {
		return err
	}
	return s.load(values)
}

// load replaces the contents with values listed top first.
func (s *LinkedStack[T]) load(values []T) (err error) {
	fresh := New[T]()
	for index := len(values) - 1; index >= 0; index-- {
		if err = fresh.Push(values[index]); err != nil {
			return err
		}
	}
	*s = *fresh
	return nil
}
