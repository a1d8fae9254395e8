package structures

import (
	"cmp"
	"errors"
)

// ErrNoComparator is raised when a container that orders its values is built
// without a compare function.
var ErrNoComparator = errors.New("structures: no comparator has been set")

// Results of a compare call.
const (
	IsLess    = -1
	IsEqual   = 0
	IsGreater = 1
)

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFunc[T any] func(a, b T) int

// Comparator wraps a CompareFunc with convenience predicates and supports
// reversing the comparison order in place.
type Comparator[T any] struct {
	// base is the compare function the comparator was built with.
	base CompareFunc[T]

	// compare is the active compare function (base or its reverse).
	compare CompareFunc[T]

	reversed bool
}

// NewComparator returns a Comparator for an ordered type using cmp.Compare.
func NewComparator[T cmp.Ordered]() *Comparator[T] {
	return NewComparatorFunc[T](cmp.Compare[T])
}

// NewComparatorFunc returns a Comparator backed by fn.
// It panics with ErrNoComparator if fn is nil.
func NewComparatorFunc[T any](fn CompareFunc[T]) *Comparator[T] {
	if fn == nil {
		panic(ErrNoComparator)
	}
	return &Comparator[T]{base: fn, compare: fn}
}

// equalityComparator orders values only by equality. Unequal values always
// compare as greater, which is enough for lookups but not for sorting.
func equalityComparator[T comparable]() *Comparator[T] {
	return NewComparatorFunc(func(a, b T) int {
		if a == b {
			return IsEqual
		}
		return IsGreater
	})
}

// Compare runs the active compare function.
func (c *Comparator[T]) Compare(a, b T) int {
	return c.compare(a, b)
}

// IsEqual reports whether a == b.
func (c *Comparator[T]) IsEqual(a, b T) bool {
	return c.compare(a, b) == IsEqual
}

// IsLess reports whether a < b.
func (c *Comparator[T]) IsLess(a, b T) bool {
	return c.compare(a, b) < IsEqual
}

// IsGreater reports whether a > b.
func (c *Comparator[T]) IsGreater(a, b T) bool {
	return c.compare(a, b) > IsEqual
}

// IsLessOrEqual reports whether a <= b.
func (c *Comparator[T]) IsLessOrEqual(a, b T) bool {
	return c.compare(a, b) <= IsEqual
}

// IsGreaterOrEqual reports whether a >= b.
func (c *Comparator[T]) IsGreaterOrEqual(a, b T) bool {
	return c.compare(a, b) >= IsEqual
}

// IsReversed reports whether Reverse is currently in effect.
func (c *Comparator[T]) IsReversed() bool {
	return c.reversed
}

// Reverse swaps the arguments of the compare function. Calling it a second
// time restores the original order.
func (c *Comparator[T]) Reverse() *Comparator[T] {
	if c.reversed {
		return c.Reset()
	}
	base := c.base
	c.compare = func(a, b T) int { return base(b, a) }
	c.reversed = true
	return c
}

// Reset restores the compare function the comparator was built with.
func (c *Comparator[T]) Reset() *Comparator[T] {
	c.compare = c.base
	c.reversed = false
	return c
}
