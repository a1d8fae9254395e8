package structures

import "iter"

// Stack is a LIFO container backed by a LinkedList; the top of the stack is
// the head of the list.
type Stack[T any] struct {
	items *LinkedList[T]
}

// NewStack creates an empty stack of comparable values.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{items: NewLinkedList[T]()}
}

// NewStackFunc creates an empty stack using c for value comparisons.
func NewStackFunc[T any](c *Comparator[T]) *Stack[T] {
	return &Stack[T]{items: NewLinkedListFunc(c)}
}

// IsEmpty reports whether the stack holds no values.
func (s *Stack[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return s.items.Len()
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) *Stack[T] {
	s.items.Prepend(v)
	return s
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	return s.items.DeleteHead()
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if head := s.items.Head(); head != nil {
		return head.Value, true
	}
	var zero T
	return zero, false
}

// All iterates from the top of the stack down.
func (s *Stack[T]) All() iter.Seq[T] {
	return s.items.All()
}

// Values returns the values from top to bottom.
func (s *Stack[T]) Values() []T {
	return s.items.Values()
}

// String joins the values from top to bottom with commas.
func (s *Stack[T]) String() string {
	return s.items.String()
}
