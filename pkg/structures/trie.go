package structures

import "sort"

// TrieHeadCharacter is the character stored in a trie's head node.
const TrieHeadCharacter = '*'

// TrieNode is one character of a Trie.
type TrieNode struct {
	character rune
	complete  bool
	children  map[rune]*TrieNode
}

func newTrieNode(r rune) *TrieNode {
	return &TrieNode{character: r, children: make(map[rune]*TrieNode)}
}

// Character returns the rune held by the node.
func (n *TrieNode) Character() rune { return n.character }

// IsCompleteWord reports whether a word ends at this node.
func (n *TrieNode) IsCompleteWord() bool { return n.complete }

// Child returns the child for r, or nil.
func (n *TrieNode) Child(r rune) *TrieNode { return n.children[r] }

// HasChild reports whether n has a child for r.
func (n *TrieNode) HasChild(r rune) bool {
	_, ok := n.children[r]
	return ok
}

// HasChildren reports whether n has any children.
func (n *TrieNode) HasChildren() bool { return len(n.children) > 0 }

// Suggestions returns the child characters of n in sorted order.
func (n *TrieNode) Suggestions() []rune {
	runes := make([]rune, 0, len(n.children))
	for r := range n.children {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Trie stores words one rune per node.
type Trie struct {
	head *TrieNode
}

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{head: newTrieNode(TrieHeadCharacter)}
}

// Head returns the head node.
func (t *Trie) Head() *TrieNode {
	return t.head
}

// SetWord adds word to the trie. Empty words are ignored.
func (t *Trie) SetWord(word string) *Trie {
	if word == "" {
		return t
	}
	curr := t.head
	for _, r := range word {
		next, ok := curr.children[r]
		if !ok {
			next = newTrieNode(r)
			curr.children[r] = next
		}
		curr = next
	}
	curr.complete = true
	return t
}

// LastNode returns the node holding the final rune of word, or nil when
// word is not a path in the trie.
func (t *Trie) LastNode(word string) *TrieNode {
	if word == "" {
		return nil
	}
	curr := t.head
	for _, r := range word {
		curr = curr.children[r]
		if curr == nil {
			return nil
		}
	}
	return curr
}

// HasWord reports whether word was added as a complete word.
func (t *Trie) HasWord(word string) bool {
	last := t.LastNode(word)
	return last != nil && last.complete
}

// DeleteWord removes word and prunes nodes that no longer lead anywhere.
// It reports whether word was present.
func (t *Trie) DeleteWord(word string) bool {
	if !t.HasWord(word) {
		return false
	}
	path := []*TrieNode{t.head}
	for _, r := range word {
		path = append(path, path[len(path)-1].children[r])
	}
	path[len(path)-1].complete = false
	for i := len(path) - 1; i > 0; i-- {
		node := path[i]
		if node.complete || node.HasChildren() {
			break
		}
		delete(path[i-1].children, node.character)
	}
	return true
}

// Words returns every complete word in lexical rune order.
func (t *Trie) Words() []string {
	var words []string
	var walk func(n *TrieNode, prefix []rune)
	walk = func(n *TrieNode, prefix []rune) {
		if n.complete {
			words = append(words, string(prefix))
		}
		for _, r := range n.Suggestions() {
			walk(n.children[r], append(prefix, r))
		}
	}
	walk(t.head, nil)
	return words
}
