package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/reactkit/pkg/structures"
)

var defaultWords = []string{"cat", "car", "cart", "dog", "do", "apple"}

func structuresCmd(a *app) *cobra.Command {
	var (
		size   int
		remove []string
	)

	cmd := &cobra.Command{
		Use:   "structures [words...]",
		Short: "Show the containers holding a set of words",
		Long: `Insert the words into every container and print the resulting
states. Words given with --remove are removed afterwards.

Examples:
  reactkit structures
  reactkit structures pear plum peach --remove plum
  reactkit structures --size 3 a b c d e`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultWords
			}
			if size <= 0 {
				return fmt.Errorf("--size must be positive, got %d", size)
			}
			a.showStructures(args, remove, size)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 7, "Number of hash table buckets")
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "Words to remove after inserting")

	return cmd
}

func (a *app) showStructures(words, remove []string, size int) {
	sorted := structures.NewLinkedList[string]()
	stack := structures.NewStack[string]()
	queue := structures.NewQueue[string]()
	tree := structures.NewSearchTree[string]()
	trie := structures.NewTrie()
	table := structures.NewHashTable[int](size)
	cmp := structures.NewComparator[string]()

	for i, w := range words {
		sorted.InsertBefore(w, func(v string) bool { return cmp.IsGreater(v, w) })
		stack.Push(w)
		queue.Enqueue(w)
		tree.Insert(w)
		trie.SetWord(w)
		table.Set(w, i)
	}
	for _, w := range remove {
		sorted.Delete(sorted.Equal(w))
		tree.Remove(w)
		trie.DeleteWord(w)
		table.Delete(w)
	}

	fmt.Fprintf(a.out, "sorted list: %s\n", sorted)
	fmt.Fprintf(a.out, "stack:       %s\n", stack)
	fmt.Fprintf(a.out, "queue:       %s\n", queue)
	fmt.Fprintf(a.out, "search tree: %s (height %d)\n", strings.Join(tree.InOrder(), ","), treeHeight(tree))
	fmt.Fprintf(a.out, "trie:        %s\n", strings.Join(trie.Words(), ","))
	fmt.Fprintf(a.out, "hash table:  %d buckets\n", table.Size())
	for _, k := range table.Keys() {
		v, _ := table.Get(k)
		fmt.Fprintf(a.out, "  [%d] %s=%d\n", table.Hash(k), k, v)
	}
}

func treeHeight(t *structures.SearchTree[string]) int {
	if t.Root() == nil {
		return 0
	}
	return t.Root().Height()
}
