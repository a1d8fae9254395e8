package structures

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBinaryTreeNodeEmpty(t *testing.T) {
	root := NewBinaryTreeNode(0)

	if !root.IsLeaf() || root.IsInternal() || root.IsBinternal() {
		t.Error("single node should be a leaf")
	}
	if root.Height() != 0 || root.BalanceFactor() != 0 {
		t.Errorf("height/balance = %d/%d, want 0/0", root.Height(), root.BalanceFactor())
	}
	if root.Left() != nil || root.Right() != nil || root.Parent() != nil || root.Uncle() != nil {
		t.Error("single node should have no links")
	}
}

func TestBinaryTreeNodeLinks(t *testing.T) {
	root := NewBinaryTreeNode(0)
	child1 := NewBinaryTreeNode(1)
	child2 := NewBinaryTreeNode(2)
	child3 := NewBinaryTreeNode(3)
	child4 := NewBinaryTreeNode(4)
	child5 := NewBinaryTreeNode(5)

	root.SetLeft(child1).SetRight(child2)
	root.Right().SetLeft(child3)
	root.Right().Left().SetLeft(child4)
	root.Right().Left().SetRight(child5)

	if root.Height() != 3 || root.BalanceFactor() != -2 {
		t.Fatalf("height/balance = %d/%d, want 3/-2", root.Height(), root.BalanceFactor())
	}
	if root.LeftHeight() != 1 || root.RightHeight() != 3 {
		t.Errorf("left/right height = %d/%d, want 1/3", root.LeftHeight(), root.RightHeight())
	}
	if child3.Parent() != child2 || child3.Uncle() != child1 {
		t.Error("child3 should have parent child2 and uncle child1")
	}
	if diff := cmp.Diff([]int{1, 0, 4, 3, 5, 2}, root.InOrder()); diff != "" {
		t.Errorf("InOrder (-want +got):\n%s", diff)
	}
	if root.String() != "1,0,4,3,5,2" {
		t.Errorf("String() = %q", root.String())
	}
	if child3.IsLeaf() || !child3.IsBinternal() || !child5.IsLeaf() {
		t.Error("leaf/binternal flags are wrong")
	}

	// The copy shares its children with child2.
	child6 := root.Right().Copy()
	child6.Value = 6
	child7 := NewBinaryTreeNode(7)
	if child6.Left().Value != 3 || child6.Right() != nil {
		t.Fatal("copy should keep the left child and no right child")
	}

	if !root.ReplaceChild(root.Left(), child6) {
		t.Fatal("ReplaceChild should succeed for a direct child")
	}
	root.Left().Left().Left().SetRight(child7)

	if root.Height() != 4 || root.BalanceFactor() != 0 {
		t.Errorf("height/balance = %d/%d, want 4/0", root.Height(), root.BalanceFactor())
	}
	if child6.Left().BalanceFactor() != 1 {
		t.Errorf("child3 balance = %d, want 1", child6.Left().BalanceFactor())
	}

	height := root.LeftHeight()
	if !root.DeleteChild(child6) {
		t.Error("DeleteChild(child6) should succeed")
	}
	if root.DeleteChild(child7) {
		t.Error("DeleteChild(child7) should fail for a grandchild")
	}
	if !root.IsInternal() || root.IsBinternal() || root.Left() != nil {
		t.Error("root should only keep its right child")
	}
	if root.BalanceFactor() != -height {
		t.Errorf("balance = %d, want %d", root.BalanceFactor(), -height)
	}

	if root.DeleteLeft() {
		t.Error("DeleteLeft should report false without a left child")
	}
	if !root.DeleteRight() {
		t.Error("DeleteRight should report true")
	}
	if root.Height() != 0 || root.Right() != nil {
		t.Error("root should be a leaf again")
	}
}

func TestSearchTree(t *testing.T) {
	tree := NewSearchTree[int]()
	for _, v := range []int{0, -1, -2, -3, 1, 2, 3, 4} {
		if !tree.Insert(v) {
			t.Fatalf("Insert(%d) should succeed", v)
		}
	}
	if tree.Insert(2) {
		t.Error("duplicate Insert should report false")
	}
	if tree.Len() != 8 {
		t.Errorf("Len() = %d, want 8", tree.Len())
	}
	if diff := cmp.Diff([]int{-3, -2, -1, 0, 1, 2, 3, 4}, tree.InOrder()); diff != "" {
		t.Errorf("InOrder (-want +got):\n%s", diff)
	}
	if min, _ := tree.Min(); min != -3 {
		t.Errorf("Min() = %d", min)
	}
	if max, _ := tree.Max(); max != 4 {
		t.Errorf("Max() = %d", max)
	}
	if tree.Root().BalanceFactor() != -1 {
		t.Errorf("root balance = %d, want -1", tree.Root().BalanceFactor())
	}
}

func TestSearchTreeRemove(t *testing.T) {
	tests := []struct {
		name   string
		remove int
		want   []int
	}{
		{"leaf", 1, []int{2, 3, 4, 5, 6}},
		{"one child", 6, []int{1, 2, 3, 4, 5}},
		{"two children", 2, []int{1, 3, 4, 5, 6}},
		{"root", 4, []int{1, 2, 3, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewSearchTree[int]()
			for _, v := range []int{4, 2, 6, 1, 3, 5} {
				tree.Insert(v)
			}

			if !tree.Remove(tt.remove) {
				t.Fatalf("Remove(%d) should succeed", tt.remove)
			}
			if tree.Contains(tt.remove) {
				t.Errorf("tree still contains %d", tt.remove)
			}
			if diff := cmp.Diff(tt.want, tree.InOrder()); diff != "" {
				t.Errorf("InOrder (-want +got):\n%s", diff)
			}
			if tree.Root().Parent() != nil {
				t.Error("root should not have a parent")
			}
		})
	}
}

func TestSearchTreeRemoveMissing(t *testing.T) {
	tree := NewSearchTree[string]()
	tree.Insert("b")
	if tree.Remove("a") {
		t.Error("Remove of a missing value should report false")
	}
	if !tree.Remove("b") || tree.Root() != nil || tree.Len() != 0 {
		t.Error("removing the only value should empty the tree")
	}
}
