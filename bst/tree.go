// Package bst implements an unbalanced binary search tree whose algorithms are
// all recursive: insert, lookup, depth and in-order traversal each descend
// through the subtrees instead of iterating.
//
// Duplicates are rejected, so a Tree behaves as an ordered set.
package bst

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/exp/constraints"

	"github.com/grpc-boot/container"
)

// ErrNoOrdering is returned when inserting into or decoding into a Tree that has no compare func.
var ErrNoOrdering = fmt.Errorf("%w: tree has no ordering", container.ErrInvalidArgument)

// Compare returns a negative number when a < b, zero when equal, positive when a > b.
type Compare[T any] func(a, b T) int

type Tree[T any] struct {
	root    *container.TreeNode[T]
	size    int
	compare Compare[T]
}

// New returns an empty tree using the natural order of T.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{compare: ordered[T]}
}

// NewFunc returns an empty tree ordered by compare. With a nil compare the
// tree stays empty, Insert returns ErrNoOrdering.
func NewFunc[T any](compare Compare[T]) *Tree[T] {
	return &Tree[T]{compare: compare}
}

func Of[T constraints.Ordered](elements ...T) *Tree[T] {
	tree := New[T]()
	for _, element := range elements {
		// ordered types are never nil
		_, _ = tree.Insert(element)
	}
	return tree
}

func ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Insert reports whether element was added. An element equal to one already
// present leaves the tree untouched and returns false.
func (t *Tree[T]) Insert(element T) (inserted bool, err error) {
	if container.IsNil(element) {
		return false, container.ErrNilElement
	}

	if t.compare == nil {
		return false, ErrNoOrdering
	}

	if t.root == nil {
		t.root = container.NewTreeNode(element)
		t.size++
		return true, nil
	}

	inserted = t.insert(t.root, element)
	if inserted {
		t.size++
	}
	return inserted, nil
}

func (t *Tree[T]) insert(node *container.TreeNode[T], element T) bool {
	c := t.compare(element, node.Value)
	switch {
	case c < 0:
		if node.Left == nil {
			node.Left = container.NewTreeNode(element)
			return true
		}
		return t.insert(node.Left, element)
	case c > 0:
		if node.Right == nil {
			node.Right = container.NewTreeNode(element)
			return true
		}
		return t.insert(node.Right, element)
	}
	return false
}

func (t *Tree[T]) Contains(element T) bool {
	if container.IsNil(element) || t.compare == nil {
		return false
	}
	return t.contains(t.root, element)
}

func (t *Tree[T]) contains(node *container.TreeNode[T], element T) bool {
	if node == nil {
		return false
	}

	c := t.compare(element, node.Value)
	switch {
	case c < 0:
		return t.contains(node.Left, element)
	case c > 0:
		return t.contains(node.Right, element)
	}
	return true
}

func (t *Tree[T]) Size() int {
	return t.size
}

func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Depth is the number of edges on the longest path from the root to a leaf.
// Both an empty tree and a single node report 0.
func (t *Tree[T]) Depth() int {
	if t.root == nil {
		return 0
	}
	return height(t.root) - 1
}

func height[T any](node *container.TreeNode[T]) int {
	if node == nil {
		return 0
	}
	return 1 + max(height(node.Left), height(node.Right))
}

// InOrderTraversal calls visit for every element in ascending order.
func (t *Tree[T]) InOrderTraversal(visit func(value T)) {
	inOrder(t.root, visit)
}

func inOrder[T any](node *container.TreeNode[T], visit func(value T)) {
	if node == nil {
		return
	}
	inOrder(node.Left, visit)
	visit(node.Value)
	inOrder(node.Right, visit)
}

func (t *Tree[T]) Min() (value T, ok bool) {
	if t.root == nil {
		return value, false
	}
	return leftmost(t.root).Value, true
}

func (t *Tree[T]) Max() (value T, ok bool) {
	if t.root == nil {
		return value, false
	}
	return rightmost(t.root).Value, true
}

func leftmost[T any](node *container.TreeNode[T]) *container.TreeNode[T] {
	if node.Left == nil {
		return node
	}
	return leftmost(node.Left)
}

func rightmost[T any](node *container.TreeNode[T]) *container.TreeNode[T] {
	if node.Right == nil {
		return node
	}
	return rightmost(node.Right)
}

func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.size)
	t.InOrderTraversal(func(value T) {
		values = append(values, value)
	})
	return values
}

func (t *Tree[T]) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(t.Values())
}

func (t *Tree[T]) UnmarshalJSON(data []byte) (err error) {
	var values []T
	if err = jsoniter.Unmarshal(data, &values); err != nil {
		return err
	}
	return t.load(values)
}

func (t *Tree[T]) MarshalYAML() (interface{}, error) {
	return t.Values(), nil
}

func (t *Tree[T]) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var values []T
	if err = unmarshal(&values); err != nil {
		return err
	}
	return t.load(values)
}

// load replaces the contents, keeping the ordering of t.
func (t *Tree[T]) load(values []T) (err error) {
	if t.compare == nil {
		return ErrNoOrdering
	}

	fresh := &Tree[T]{compare: t.compare}
	for _, value := range values {
		if _, err = fresh.Insert(value); err != nil {
			return err
		}
	}
	*t = *fresh
	return nil
}
