package structures

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTrie(t *testing.T) {
	words := []string{"Don't", "come", "easy", "to", "me"}
	trie := NewTrie()

	if trie.Head().Character() != TrieHeadCharacter {
		t.Fatalf("head character = %q", trie.Head().Character())
	}
	if trie.HasWord(words[0]) {
		t.Error("empty trie should not have words")
	}

	for _, w := range words {
		trie.SetWord(w)
	}

	word := words[1]
	if !trie.Head().HasChildren() || !trie.HasWord(word) {
		t.Fatal("trie should contain the added words")
	}
	child := trie.Head().Child('c')
	last := trie.LastNode(word)
	if child.Character() != 'c' || child.IsCompleteWord() {
		t.Error("first node of a longer word should not be complete")
	}
	if last == nil || last.Character() != 'e' || !last.IsCompleteWord() {
		t.Error("last node should be complete")
	}
	if !trie.Head().Child('m').HasChild('e') {
		t.Error("'m' should lead to 'e'")
	}

	if !trie.DeleteWord("easy") {
		t.Error("DeleteWord should report true for a stored word")
	}
	if trie.HasWord("easy") || trie.LastNode("easy") != nil {
		t.Error("deleted word should be pruned")
	}
	if diff := cmp.Diff([]string{"Don't", "come", "me", "to"}, trie.Words()); diff != "" {
		t.Errorf("Words (-want +got):\n%s", diff)
	}

	for _, w := range words {
		trie.DeleteWord(w)
	}
	if trie.HasWord(words[0]) || trie.Head().HasChildren() {
		t.Error("deleting every word should leave an empty head")
	}
}

func TestTrieSharedPrefix(t *testing.T) {
	trie := NewTrie().SetWord("to").SetWord("tow")

	trie.DeleteWord("tow")
	if !trie.HasWord("to") {
		t.Error("deleting a longer word should keep its prefix word")
	}
	if trie.LastNode("to").HasChildren() {
		t.Error("the 'w' node should be pruned")
	}
	if trie.DeleteWord("t") {
		t.Error("a prefix that is not a word should not be deletable")
	}
}
