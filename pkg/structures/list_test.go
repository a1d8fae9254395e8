package structures

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func prefilledList() *LinkedList[int] {
	l := NewLinkedList[int]()
	l.Append(2).Prepend(1).Append(3)
	return l
}

func TestLinkedListEmpty(t *testing.T) {
	l := NewLinkedList[int]()

	if l.Head() != nil || l.Tail() != nil {
		t.Fatal("empty list should have no head or tail")
	}
	if l.Find(l.Equal(1)) != nil {
		t.Error("Find on empty list should return nil")
	}
	if l.At(2) != nil {
		t.Error("At on empty list should return nil")
	}
	if got := l.FindIndex(l.Equal(3)); got != -1 {
		t.Errorf("FindIndex = %d, want -1", got)
	}
	if _, ok := l.DeleteHead(); ok {
		t.Error("DeleteHead on empty list should report false")
	}
	if _, ok := l.DeleteTail(); ok {
		t.Error("DeleteTail on empty list should report false")
	}
}

func TestLinkedListLookups(t *testing.T) {
	l := prefilledList()

	if l.Tail().Next() != nil {
		t.Error("tail should not have a next node")
	}
	for i, want := range []int{1, 2, 3} {
		if got := l.At(i).Value; got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
		if got := l.FindIndex(l.Equal(want)); got != i {
			t.Errorf("FindIndex(%d) = %d, want %d", want, got, i)
		}
		if got := l.Find(l.Equal(want)).Value; got != want {
			t.Errorf("Find(%d) = %d", want, got)
		}
	}
	if !l.Has(func(v int) bool { return v%2 == 0 }) {
		t.Error("Has with predicate should find the even value")
	}
}

func TestLinkedListInsertAndDelete(t *testing.T) {
	l := prefilledList()

	l.Prepend(4)
	l.Append(5)
	l.InsertBefore(6, l.Equal(l.Tail().Value))
	l.InsertAt(7, l.FindIndex(l.Equal(6)))

	want := []int{4, 1, 2, 3, 7, 6, 5}
	if diff := cmp.Diff(want, l.Values()); diff != "" {
		t.Fatalf("Values mismatch (-want +got):\n%s", diff)
	}
	if got := l.String(); got != "4,1,2,3,7,6,5" {
		t.Errorf("String() = %q", got)
	}
	if l.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", l.Len(), len(want))
	}
	if l.Has(l.Equal(100500)) {
		t.Error("Has should not find a missing value")
	}

	if v, ok := l.Delete(l.Equal(6)); !ok || v != 6 {
		t.Errorf("Delete(6) = %d, %v", v, ok)
	}
	if v, ok := l.DeleteAt(4); !ok || v != 7 {
		t.Errorf("DeleteAt(4) = %d, %v", v, ok)
	}
	if v, _ := l.DeleteHead(); v != 4 {
		t.Errorf("DeleteHead() = %d, want 4", v)
	}
	if v, _ := l.DeleteTail(); v != 5 {
		t.Errorf("DeleteTail() = %d, want 5", v)
	}

	if diff := cmp.Diff([]int{1, 2, 3}, l.Values()); diff != "" {
		t.Fatalf("Values after deletes (-want +got):\n%s", diff)
	}
	if l.Head().Value != 1 || l.Tail().Value != 3 {
		t.Errorf("head/tail = %d/%d, want 1/3", l.Head().Value, l.Tail().Value)
	}
	if l.Tail().Next() != nil {
		t.Error("tail should not have a next node after deletes")
	}
}

func TestLinkedListDeleteTailKeepsTailPointer(t *testing.T) {
	l := prefilledList()

	l.Delete(l.Equal(3))
	if l.Tail().Value != 2 {
		t.Fatalf("tail = %d, want 2", l.Tail().Value)
	}
	l.Append(9)
	if diff := cmp.Diff([]int{1, 2, 9}, l.Values()); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
}

func TestLinkedListReverse(t *testing.T) {
	l := prefilledList().Reverse()

	if diff := cmp.Diff([]int{3, 2, 1}, l.Values()); diff != "" {
		t.Fatalf("Values (-want +got):\n%s", diff)
	}
	if l.Head().Value != 3 || l.Tail().Value != 1 {
		t.Errorf("head/tail = %d/%d, want 3/1", l.Head().Value, l.Tail().Value)
	}
}

func TestLinkedListCustomComparator(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	byID := NewComparatorFunc(func(a, b user) int { return a.id - b.id })
	l := NewLinkedListFunc(byID)
	l.Append(user{1, "ann"}).Append(user{2, "bob"})

	node := l.Find(l.Equal(user{id: 2}))
	if node == nil || node.Value.name != "bob" {
		t.Fatalf("Find by id = %+v", node)
	}
	got := l.StringFunc(func(u user) string { return u.name })
	if got != "ann,bob" {
		t.Errorf("StringFunc() = %q", got)
	}
}

func TestStack(t *testing.T) {
	s := NewStack[string]()
	if _, ok := s.Peek(); ok {
		t.Fatal("Peek on empty stack should report false")
	}

	s.Push("a").Push("b").Push("c")
	if top, _ := s.Peek(); top != "c" {
		t.Errorf("Peek() = %q, want c", top)
	}
	if diff := cmp.Diff([]string{"c", "b", "a"}, s.Values()); diff != "" {
		t.Errorf("Values (-want +got):\n%s", diff)
	}
	if got := s.String(); got != "c,b,a" {
		t.Errorf("String() = %q", got)
	}

	for _, want := range []string{"c", "b", "a"} {
		if got, ok := s.Pop(); !ok || got != want {
			t.Errorf("Pop() = %q, %v, want %q", got, ok, want)
		}
	}
	if !s.IsEmpty() {
		t.Error("stack should be empty")
	}
	if _, ok := s.Pop(); ok {
		t.Error("Pop on empty stack should report false")
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue[int]()
	if _, ok := q.Dequeue(); ok {
		t.Fatal("Dequeue on empty queue should report false")
	}

	q.Enqueue(1).Enqueue(2).Enqueue(3)
	if front, _ := q.Peek(); front != 1 {
		t.Errorf("Peek() = %d, want 1", front)
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}
	for _, want := range []int{1, 2, 3} {
		if got, _ := q.Dequeue(); got != want {
			t.Errorf("Dequeue() = %d, want %d", got, want)
		}
	}
	if !q.IsEmpty() || q.String() != "" {
		t.Error("queue should be empty")
	}
}

func TestComparatorReverse(t *testing.T) {
	c := NewComparator[int]()

	if !c.IsLess(1, 2) || !c.IsGreaterOrEqual(2, 2) || !c.IsLessOrEqual(1, 1) {
		t.Fatal("default comparator predicates are wrong")
	}
	c.Reverse()
	if !c.IsReversed() || !c.IsGreater(1, 2) {
		t.Error("reversed comparator should treat 1 as greater than 2")
	}
	c.Reverse()
	if c.IsReversed() || !c.IsLess(1, 2) {
		t.Error("second Reverse should restore the original order")
	}
}

func TestComparatorNilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNoComparator {
			t.Errorf("recover() = %v, want ErrNoComparator", r)
		}
	}()
	NewComparatorFunc[int](nil)
}
