package structures

import (
	"cmp"
	"iter"
)

// SearchTree is an unbalanced binary search tree holding unique values.
type SearchTree[T any] struct {
	root    *BinaryTreeNode[T]
	size    int
	compare *Comparator[T]
}

// NewSearchTree creates an empty tree for an ordered type.
func NewSearchTree[T cmp.Ordered]() *SearchTree[T] {
	return &SearchTree[T]{compare: NewComparator[T]()}
}

// NewSearchTreeFunc creates an empty tree ordered by c.
// It panics with ErrNoComparator if c is nil.
func NewSearchTreeFunc[T any](c *Comparator[T]) *SearchTree[T] {
	if c == nil {
		panic(ErrNoComparator)
	}
	return &SearchTree[T]{compare: c}
}

// Root returns the root node, or nil for an empty tree.
func (t *SearchTree[T]) Root() *BinaryTreeNode[T] {
	return t.root
}

// Len returns the number of values in the tree.
func (t *SearchTree[T]) Len() int {
	return t.size
}

// Insert adds v and reports whether it was not already present.
func (t *SearchTree[T]) Insert(v T) bool {
	if t.root == nil {
		t.root = NewBinaryTreeNode(v)
		t.size++
		return true
	}
	curr := t.root
	for {
		switch c := t.compare.Compare(v, curr.Value); {
		case c == IsEqual:
			return false
		case c < IsEqual:
			if curr.left == nil {
				curr.SetLeft(NewBinaryTreeNode(v))
				t.size++
				return true
			}
			curr = curr.left
		default:
			if curr.right == nil {
				curr.SetRight(NewBinaryTreeNode(v))
				t.size++
				return true
			}
			curr = curr.right
		}
	}
}

// Find returns the node holding v, or nil.
func (t *SearchTree[T]) Find(v T) *BinaryTreeNode[T] {
	curr := t.root
	for curr != nil {
		switch c := t.compare.Compare(v, curr.Value); {
		case c == IsEqual:
			return curr
		case c < IsEqual:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	return nil
}

// Contains reports whether v is in the tree.
func (t *SearchTree[T]) Contains(v T) bool {
	return t.Find(v) != nil
}

// Min returns the smallest value.
func (t *SearchTree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return leftmost(t.root).Value, true
}

// Max returns the largest value.
func (t *SearchTree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	curr := t.root
	for curr.right != nil {
		curr = curr.right
	}
	return curr.Value, true
}

// Remove deletes v and reports whether it was present.
func (t *SearchTree[T]) Remove(v T) bool {
	node := t.Find(v)
	if node == nil {
		return false
	}
	if node.IsBinternal() {
		// Move the in-order successor's value up, then unlink the successor,
		// which has at most a right child.
		succ := leftmost(node.right)
		node.Value = succ.Value
		node = succ
	}
	child := node.left
	if child == nil {
		child = node.right
	}
	if node.parent == nil {
		t.root = child
		if child != nil {
			child.parent = nil
		}
	} else {
		node.parent.ReplaceChild(node, child)
	}
	t.size--
	return true
}

// All iterates over the values in ascending order.
func (t *SearchTree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var stack []*BinaryTreeNode[T]
		curr := t.root
		for curr != nil || len(stack) > 0 {
			for curr != nil {
				stack = append(stack, curr)
				curr = curr.left
			}
			curr = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(curr.Value) {
				return
			}
			curr = curr.right
		}
	}
}

// InOrder returns the values in ascending order.
func (t *SearchTree[T]) InOrder() []T {
	values := make([]T, 0, t.size)
	for v := range t.All() {
		values = append(values, v)
	}
	return values
}

func leftmost[T any](n *BinaryTreeNode[T]) *BinaryTreeNode[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}
