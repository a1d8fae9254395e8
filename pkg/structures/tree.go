package structures

import (
	"fmt"
	"strings"
)

// BinaryTreeNode is a node of a binary tree with a back link to its parent.
// Heights are measured in edges: a leaf has height 0.
type BinaryTreeNode[T any] struct {
	// Value is the payload stored in the node.
	Value T

	left   *BinaryTreeNode[T]
	right  *BinaryTreeNode[T]
	parent *BinaryTreeNode[T]
}

// NewBinaryTreeNode creates a detached node holding v.
func NewBinaryTreeNode[T any](v T) *BinaryTreeNode[T] {
	return &BinaryTreeNode[T]{Value: v}
}

// Left returns the left child, or nil.
func (n *BinaryTreeNode[T]) Left() *BinaryTreeNode[T] { return n.left }

// Right returns the right child, or nil.
func (n *BinaryTreeNode[T]) Right() *BinaryTreeNode[T] { return n.right }

// Parent returns the parent node, or nil for a root.
func (n *BinaryTreeNode[T]) Parent() *BinaryTreeNode[T] { return n.parent }

// Uncle returns the sibling of the parent node, or nil.
func (n *BinaryTreeNode[T]) Uncle() *BinaryTreeNode[T] {
	if n.parent == nil || n.parent.parent == nil {
		return nil
	}
	grand := n.parent.parent
	if grand.left == n.parent {
		return grand.right
	}
	return grand.left
}

// IsLeaf reports whether the node has no children.
func (n *BinaryTreeNode[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsInternal reports whether the node has at least one child.
func (n *BinaryTreeNode[T]) IsInternal() bool {
	return !n.IsLeaf()
}

// IsBinternal reports whether the node has both children.
func (n *BinaryTreeNode[T]) IsBinternal() bool {
	return n.left != nil && n.right != nil
}

// LeftHeight returns the height of the left subtree counted from n.
func (n *BinaryTreeNode[T]) LeftHeight() int {
	if n.left == nil {
		return 0
	}
	return n.left.Height() + 1
}

// RightHeight returns the height of the right subtree counted from n.
func (n *BinaryTreeNode[T]) RightHeight() int {
	if n.right == nil {
		return 0
	}
	return n.right.Height() + 1
}

// Height returns the number of edges on the longest path down to a leaf.
func (n *BinaryTreeNode[T]) Height() int {
	return max(n.LeftHeight(), n.RightHeight())
}

// BalanceFactor returns LeftHeight minus RightHeight.
func (n *BinaryTreeNode[T]) BalanceFactor() int {
	return n.LeftHeight() - n.RightHeight()
}

// SetLeft replaces the left child. The previous child, if any, is detached.
func (n *BinaryTreeNode[T]) SetLeft(child *BinaryTreeNode[T]) *BinaryTreeNode[T] {
	if n.left != nil && n.left.parent == n {
		n.left.parent = nil
	}
	n.left = child
	if child != nil {
		child.parent = n
	}
	return n
}

// SetRight replaces the right child. The previous child, if any, is detached.
func (n *BinaryTreeNode[T]) SetRight(child *BinaryTreeNode[T]) *BinaryTreeNode[T] {
	if n.right != nil && n.right.parent == n {
		n.right.parent = nil
	}
	n.right = child
	if child != nil {
		child.parent = n
	}
	return n
}

// ReplaceChild swaps the direct child old for replacement.
// It reports false when old is not a child of n.
func (n *BinaryTreeNode[T]) ReplaceChild(old, replacement *BinaryTreeNode[T]) bool {
	switch {
	case old == nil:
		return false
	case n.left == old:
		n.SetLeft(replacement)
		return true
	case n.right == old:
		n.SetRight(replacement)
		return true
	}
	return false
}

// DeleteChild detaches the direct child. It reports false when child is not
// a child of n.
func (n *BinaryTreeNode[T]) DeleteChild(child *BinaryTreeNode[T]) bool {
	return n.ReplaceChild(child, nil)
}

// DeleteLeft detaches the left child and reports whether there was one.
func (n *BinaryTreeNode[T]) DeleteLeft() bool {
	return n.DeleteChild(n.left)
}

// DeleteRight detaches the right child and reports whether there was one.
func (n *BinaryTreeNode[T]) DeleteRight() bool {
	return n.DeleteChild(n.right)
}

// Copy returns a new node with the same value and children. The children are
// shared, not cloned, and are re-parented to the copy.
func (n *BinaryTreeNode[T]) Copy() *BinaryTreeNode[T] {
	if n == nil {
		return nil
	}
	cp := NewBinaryTreeNode(n.Value)
	cp.SetLeft(n.left)
	cp.SetRight(n.right)
	return cp
}

// InOrder returns the subtree values in left, node, right order.
func (n *BinaryTreeNode[T]) InOrder() []T {
	var values []T
	n.walkInOrder(func(v T) { values = append(values, v) })
	return values
}

func (n *BinaryTreeNode[T]) walkInOrder(visit func(T)) {
	if n == nil {
		return
	}
	n.left.walkInOrder(visit)
	visit(n.Value)
	n.right.walkInOrder(visit)
}

// String joins the in-order values with commas.
func (n *BinaryTreeNode[T]) String() string {
	parts := make([]string, 0)
	n.walkInOrder(func(v T) { parts = append(parts, fmt.Sprint(v)) })
	return strings.Join(parts, ",")
}
