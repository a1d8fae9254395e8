package structures

import "iter"

// Queue is a FIFO container backed by a LinkedList: values are enqueued at the
// tail and dequeued from the head.
type Queue[T any] struct {
	items *LinkedList[T]
}

// NewQueue creates an empty queue of comparable values.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{items: NewLinkedList[T]()}
}

// NewQueueFunc creates an empty queue using c for value comparisons.
func NewQueueFunc[T any](c *Comparator[T]) *Queue[T] {
	return &Queue[T]{items: NewLinkedListFunc(c)}
}

// IsEmpty reports whether the queue holds no values.
func (q *Queue[T]) IsEmpty() bool {
	return q.items.IsEmpty()
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int {
	return q.items.Len()
}

// Enqueue adds v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) *Queue[T] {
	q.items.Append(v)
	return q
}

// Dequeue removes and returns the value at the front of the queue.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.items.DeleteHead()
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if head := q.items.Head(); head != nil {
		return head.Value, true
	}
	var zero T
	return zero, false
}

// All iterates from the front of the queue to the back.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.items.All()
}

// Values returns the values from front to back.
func (q *Queue[T]) Values() []T {
	return q.items.Values()
}

// String joins the values from front to back with commas.
func (q *Queue[T]) String() string {
	return q.items.String()
}
