// Package structures provides generic, textbook container types: a singly
// linked list, a stack and a queue built on top of it, binary and binary
// search trees, a trie and a separately chained hash table.
//
// The containers are deliberately small and readable. None of them are safe
// for concurrent use; callers that share a container between goroutines must
// provide their own locking.
//
// # Comparators
//
// Containers that need to compare values take a *Comparator[T]. Ordered types
// get one for free:
//
//	list := structures.NewLinkedList[int]()
//	list.Append(1).Append(2).Prepend(0)
//	list.Has(list.Equal(2)) // true
//
// Any other type supplies its own compare function:
//
//	byName := structures.NewComparatorFunc(func(a, b User) int {
//	    return strings.Compare(a.Name, b.Name)
//	})
//	users := structures.NewLinkedListFunc(byName)
package structures
