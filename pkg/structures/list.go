package structures

import (
	"fmt"
	"iter"
	"strings"
)

// ListNode is a single link of a LinkedList.
type ListNode[T any] struct {
	// Value is the payload stored in the node.
	Value T

	next *ListNode[T]
}

// Next returns the following node, or nil at the tail.
func (n *ListNode[T]) Next() *ListNode[T] {
	return n.next
}

// Matcher selects list values for lookups and deletions.
type Matcher[T any] func(v T) bool

// LinkedList is a singly linked list with head and tail pointers.
// Appending, prepending and removing the head are O(1); everything else walks
// the list.
type LinkedList[T any] struct {
	head *ListNode[T]
	tail *ListNode[T]
	size int

	// compare backs Equal matchers.
	compare *Comparator[T]
}

// NewLinkedList creates an empty list whose Equal matcher uses ==.
func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{compare: equalityComparator[T]()}
}

// NewLinkedListFunc creates an empty list whose Equal matcher uses c.
// It panics with ErrNoComparator if c is nil.
func NewLinkedListFunc[T any](c *Comparator[T]) *LinkedList[T] {
	if c == nil {
		panic(ErrNoComparator)
	}
	return &LinkedList[T]{compare: c}
}

// Equal returns a Matcher selecting values equal to v under the list's
// comparator.
func (l *LinkedList[T]) Equal(v T) Matcher[T] {
	return func(item T) bool {
		return l.compare.IsEqual(item, v)
	}
}

// Comparator returns the comparator used by Equal matchers.
func (l *LinkedList[T]) Comparator() *Comparator[T] {
	return l.compare
}

// Head returns the first node, or nil when the list is empty.
func (l *LinkedList[T]) Head() *ListNode[T] {
	return l.head
}

// Tail returns the last node, or nil when the list is empty.
func (l *LinkedList[T]) Tail() *ListNode[T] {
	return l.tail
}

// Len returns the number of values in the list.
func (l *LinkedList[T]) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no values.
func (l *LinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

// Prepend adds v at the head.
func (l *LinkedList[T]) Prepend(v T) *LinkedList[T] {
	node := &ListNode[T]{Value: v, next: l.head}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.size++
	return l
}

// Append adds v at the tail.
func (l *LinkedList[T]) Append(v T) *LinkedList[T] {
	if l.tail == nil {
		return l.Prepend(v)
	}
	node := &ListNode[T]{Value: v}
	l.tail.next = node
	l.tail = node
	l.size++
	return l
}

// InsertBefore places v in front of the first value selected by match.
// When nothing matches, v is appended. A nil match inserts nothing into a
// non-empty list.
func (l *LinkedList[T]) InsertBefore(v T, match Matcher[T]) *LinkedList[T] {
	if l.head == nil {
		return l.Prepend(v)
	}
	if match == nil {
		return l
	}
	if match(l.head.Value) {
		return l.Prepend(v)
	}
	for curr := l.head; curr.next != nil; curr = curr.next {
		if match(curr.next.Value) {
			curr.next = &ListNode[T]{Value: v, next: curr.next}
			l.size++
			return l
		}
	}
	return l.Append(v)
}

// InsertAt places v so that it ends up at index i. Indexes at or below zero
// prepend, indexes past the end append.
func (l *LinkedList[T]) InsertAt(v T, i int) *LinkedList[T] {
	if l.head == nil || i <= 0 {
		return l.Prepend(v)
	}
	if i >= l.size {
		return l.Append(v)
	}
	prev := l.head
	for idx := 1; idx < i; idx++ {
		prev = prev.next
	}
	prev.next = &ListNode[T]{Value: v, next: prev.next}
	l.size++
	return l
}

// DeleteHead removes and returns the first value.
func (l *LinkedList[T]) DeleteHead() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	node := l.head
	l.head = node.next
	if l.head == nil {
		l.tail = nil
	}
	node.next = nil
	l.size--
	return node.Value, true
}

// Delete removes and returns the first value selected by match.
func (l *LinkedList[T]) Delete(match Matcher[T]) (T, bool) {
	var zero T
	if l.head == nil || match == nil {
		return zero, false
	}
	if match(l.head.Value) {
		return l.DeleteHead()
	}
	for prev := l.head; prev.next != nil; prev = prev.next {
		if match(prev.next.Value) {
			return l.unlinkAfter(prev), true
		}
	}
	return zero, false
}

// DeleteAt removes and returns the value at index i.
func (l *LinkedList[T]) DeleteAt(i int) (T, bool) {
	var zero T
	if l.head == nil || i >= l.size {
		return zero, false
	}
	if i <= 0 {
		return l.DeleteHead()
	}
	prev := l.head
	for idx := 1; idx < i; idx++ {
		prev = prev.next
	}
	return l.unlinkAfter(prev), true
}

// DeleteTail removes and returns the last value.
func (l *LinkedList[T]) DeleteTail() (T, bool) {
	return l.DeleteAt(l.size - 1)
}

// unlinkAfter removes prev.next, fixing the tail pointer when needed.
func (l *LinkedList[T]) unlinkAfter(prev *ListNode[T]) T {
	node := prev.next
	prev.next = node.next
	if l.tail == node {
		l.tail = prev
	}
	node.next = nil
	l.size--
	return node.Value
}

// Find returns the first node selected by match, or nil.
func (l *LinkedList[T]) Find(match Matcher[T]) *ListNode[T] {
	if match == nil {
		return nil
	}
	for curr := l.head; curr != nil; curr = curr.next {
		if match(curr.Value) {
			return curr
		}
	}
	return nil
}

// FindIndex returns the index of the first value selected by match, or -1.
func (l *LinkedList[T]) FindIndex(match Matcher[T]) int {
	if match == nil {
		return -1
	}
	idx := 0
	for curr := l.head; curr != nil; curr = curr.next {
		if match(curr.Value) {
			return idx
		}
		idx++
	}
	return -1
}

// At returns the node at index i, or nil when i is out of range.
func (l *LinkedList[T]) At(i int) *ListNode[T] {
	if i < 0 {
		return nil
	}
	curr := l.head
	for idx := 0; curr != nil && idx < i; idx++ {
		curr = curr.next
	}
	return curr
}

// Has reports whether any value is selected by match.
func (l *LinkedList[T]) Has(match Matcher[T]) bool {
	return l.Find(match) != nil
}

// Reverse flips the order of the list in place.
func (l *LinkedList[T]) Reverse() *LinkedList[T] {
	var prev *ListNode[T]
	curr := l.head
	for curr != nil {
		next := curr.next
		curr.next = prev
		prev = curr
		curr = next
	}
	l.head, l.tail = prev, l.head
	return l
}

// Clear drops every value.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// All iterates over the values from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for curr := l.head; curr != nil; curr = curr.next {
			if !yield(curr.Value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail.
func (l *LinkedList[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String joins the values with commas using fmt formatting.
func (l *LinkedList[T]) String() string {
	return l.StringFunc(func(v T) string { return fmt.Sprint(v) })
}

// StringFunc joins the values with commas using format.
func (l *LinkedList[T]) StringFunc(format func(T) string) string {
	var b strings.Builder
	for curr := l.head; curr != nil; curr = curr.next {
		if curr != l.head {
			b.WriteByte(',')
		}
		b.WriteString(format(curr.Value))
	}
	return b.String()
}
