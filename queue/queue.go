package queue

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/grpc-boot/container"
)

type Queue[T any] interface {
	Add(value T) (err error)
	Poll() (value T, ok bool)
	Size() (size int)
}

// LinkedQueue is a FIFO queue keeping both ends of a singly linked chain, so Add
// and Poll are O(1). Not safe for concurrent use.
type LinkedQueue[T any] struct {
	head *container.SingleNode[T]
	//tail不持有节点，只指向链尾
	tail *container.SingleNode[T]
	size int
}

func New[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

func Of[T any](elements ...T) (q *LinkedQueue[T], err error) {
	q = New[T]()
	for _, element := range elements {
		if err = q.Add(element); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *LinkedQueue[T]) Add(value T) (err error) {
	if container.IsNil(value) {
		return container.ErrNilElement
	}

	node := container.NewSingleNode(value, nil)
	if q.tail == nil {
		q.head, q.tail = node, node
	} else {
		q.tail.Next = node
		q.tail = node
	}
	q.size++
	return nil
}

// Poll removes the head. ok is false when the queue is empty, that is not an error.
func (q *LinkedQueue[T]) Poll() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}

	node := q.head
	q.head = node.Next
	if q.head == nil {
		q.tail = nil
	}
	node.Next = nil
	q.size--
	return node.Value, true
}

func (q *LinkedQueue[T]) Peek() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}
	return q.head.Value, true
}

func (q *LinkedQueue[T]) Size() (size int) {
	return q.size
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.size == 0
}

func (q *LinkedQueue[T]) Range(handler func(value T) (handled bool)) {
	for node := q.head; node != nil; node = node.Next {
		if handler(node.Value) {
			return
		}
	}
}

func (q *LinkedQueue[T]) Values() []T {
	values := make([]T, 0, q.size)
	q.Range(func(value T) (handled bool) {
		values = append(values, value)
		return false
	})
	return values
}

func (q *LinkedQueue[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(q.Values())
}

func (q *LinkedQueue[T]) UnmarshalJSON(data []byte) (err error) {
	var values []T
	if err = jsoniter.Unmarshal(data, &values); err != nil {
		return err
	}
	return q.load(values)
}

func (q *LinkedQueue[T]) MarshalYAML() (interface{}, error) {
	return q.Values(), nil
}

func (q *LinkedQueue[T]) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var values []T
	if err = unmarshal(&values); err != nil {
		return err
	}
	return q.load(values)
}

func (q *LinkedQueue[T]) load(values []T) (err error) {
	fresh, err := Of(values...)
	if err != nil {
		return err
	}
	*q = *fresh
	return nil
}
