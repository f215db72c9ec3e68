package container

// SingleNode is one link of a singly linked chain, it owns its successor.
type SingleNode[T any] struct {
	Value T
	Next  *SingleNode[T]
}

func NewSingleNode[T any](value T, next *SingleNode[T]) (node *SingleNode[T]) {
	return &SingleNode[T]{
		Value: value,
		Next:  next,
	}
}

// TreeNode owns its left and right subtrees, there is no parent link.
type TreeNode[T any] struct {
	Value T
	Left  *TreeNode[T]
	Right *TreeNode[T]
}

func NewTreeNode[T any](value T) (node *TreeNode[T]) {
	return &TreeNode[T]{Value: value}
}
