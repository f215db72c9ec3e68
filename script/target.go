package script

import (
	"fmt"

	"github.com/grpc-boot/container"
	"github.com/grpc-boot/container/bst"
	"github.com/grpc-boot/container/list"
	"github.com/grpc-boot/container/queue"
	"github.com/grpc-boot/container/stack"
)

// target adapts one container kind to script steps.
type target interface {
	apply(step Step) (result interface{}, err error)
	// state is the container itself, encoded at the end of a run.
	state() interface{}
}

func newTarget(s *Script) (t target, err error) {
	switch s.Kind {
	case container.KindStack:
		st, err := stack.Of(s.Initial...)
		if err != nil {
			return nil, err
		}
		return &stackTarget{stack: st}, nil
	case container.KindQueue:
		q, err := queue.Of(s.Initial...)
		if err != nil {
			return nil, err
		}
		return &queueTarget{queue: q}, nil
	case container.KindLinked:
		l, err := list.OfLinked(s.Initial...)
		if err != nil {
			return nil, err
		}
		return &listTarget{list: l}, nil
	case container.KindArray:
		capacity := s.Capacity
		// capacity is optional in scripts, Validate already rejected negatives
		if capacity == 0 {
			capacity = container.DefaultCapacity
		}
		l, err := list.NewArrayListWithCapacity[int](capacity)
		if err != nil {
			return nil, err
		}
		for _, value := range s.Initial {
			if err = l.Add(value); err != nil {
				return nil, err
			}
		}
		return &listTarget{list: l}, nil
	case container.KindBst:
		return &bstTarget{tree: bst.Of(s.Initial...)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
}

func unknownOp(kind string, step Step) error {
	return fmt.Errorf("%w: %s does not support %q", ErrUnknownOp, kind, step.Op)
}

type stackTarget struct {
	stack *stack.LinkedStack[int]
}

func (t *stackTarget) apply(step Step) (result interface{}, err error) {
	switch step.Op {
	case "push":
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		return nil, t.stack.Push(value)
	case "pop":
		return t.stack.Pop()
	case "peek":
		return t.stack.Peek()
	case "size":
		return t.stack.Size(), nil
	case "empty":
		return t.stack.IsEmpty(), nil
	}
	return nil, unknownOp(container.KindStack, step)
}

func (t *stackTarget) state() interface{} {
	return t.stack
}

type queueTarget struct {
	queue *queue.LinkedQueue[int]
}

// emptyPoll marks a poll or peek on an empty queue. It is reported as a nil
// result, never as a step error.
type emptyPoll struct{}

func (t *queueTarget) apply(step Step) (result interface{}, err error) {
	switch step.Op {
	case "add":
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		return nil, t.queue.Add(value)
	case "poll":
		value, ok := t.queue.Poll()
		if !ok {
			return emptyPoll{}, nil
		}
		return value, nil
	case "peek":
		value, ok := t.queue.Peek()
		if !ok {
			return emptyPoll{}, nil
		}
		return value, nil
	case "size":
		return t.queue.Size(), nil
	case "empty":
		return t.queue.IsEmpty(), nil
	}
	return nil, unknownOp(container.KindQueue, step)
}

func (t *queueTarget) state() interface{} {
	return t.queue
}

type listTarget struct {
	list list.List[int]
}

func (t *listTarget) apply(step Step) (result interface{}, err error) {
	switch step.Op {
	case "add":
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		if step.Index != nil {
			return nil, t.list.Insert(*step.Index, value)
		}
		return nil, t.list.Add(value)
	case "set":
		index, err := step.index()
		if err != nil {
			return nil, err
		}
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		return nil, t.list.Set(index, value)
	case "get":
		index, err := step.index()
		if err != nil {
			return nil, err
		}
		return t.list.Get(index)
	case "remove":
		index, err := step.index()
		if err != nil {
			return nil, err
		}
		return t.list.Remove(index)
	case "first":
		return t.list.First()
	case "last":
		return t.list.Last()
	case "contains":
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		return t.list.Contains(value), nil
	case "size":
		return t.list.Size(), nil
	case "empty":
		return t.list.IsEmpty(), nil
	case "clear":
		t.list.Clear()
		return nil, nil
	}
	return nil, unknownOp("list", step)
}

func (t *listTarget) state() interface{} {
	return t.list
}

type bstTarget struct {
	tree *bst.Tree[int]
}

func (t *bstTarget) apply(step Step) (result interface{}, err error) {
	switch step.Op {
	case "insert":
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		return t.tree.Insert(value)
	case "contains":
		value, err := step.value()
		if err != nil {
			return nil, err
		}
		return t.tree.Contains(value), nil
	case "depth":
		return t.tree.Depth(), nil
	case "size":
		return t.tree.Size(), nil
	case "empty":
		return t.tree.IsEmpty(), nil
	case "min":
		value, ok := t.tree.Min()
		if !ok {
			return nil, container.ErrNoSuchElement
		}
		return value, nil
	case "max":
		value, ok := t.tree.Max()
		if !ok {
			return nil, container.ErrNoSuchElement
		}
		return value, nil
	case "traverse":
		return t.tree.Values(), nil
	}
	return nil, unknownOp(container.KindBst, step)
}

func (t *bstTarget) state() interface{} {
	return t.tree
}
