package avl

import (
	"go.lepak.sg/flatavl/tree"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree over keys of type T.
// Create one with New or NewFunc; the zero Tree is not usable.
//
// Invariants, between calls:
//   - The in-order sequence of keys is non-decreasing: keys in the left
//     subtree of a node are <= its key, keys in the right subtree >=.
//   - Child and parent links agree, and the root has no parent.
//   - Every node's Height and Balance match its children, and every
//     Balance is -1, 0 or +1.
//   - The arena's free list only holds deleted slots, each once.
type Tree[T any] struct {
	nodes tree.Arena[T]
	root  tree.Index
	cmp   func(a, b T) tree.Order
}

// New returns a tree holding values, inserted in order.
func New[T constraints.Ordered](values ...T) *Tree[T] {
	return NewFunc(tree.Compare[T], values...)
}

// NewFunc returns a tree that orders keys with cmp, holding values,
// inserted in order. cmp must be a total order and must not change
// its mind about two keys while they are in the tree.
func NewFunc[T any](cmp func(a, b T) tree.Order, values ...T) *Tree[T] {
	t := &Tree[T]{
		root: tree.None,
		cmp:  cmp,
	}

	for _, v := range values {
		t.Insert(v)
	}

	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.nodes.Live()
}

// Height returns the height of the tree, 0 when it is empty.
func (t *Tree[T]) Height() int {
	return t.nodes.Height(t.root)
}

// Root returns the slot of the root node, or tree.None.
func (t *Tree[T]) Root() tree.Index {
	return t.root
}

// Slots returns the number of arena slots ever used: the high-water
// mark of Len.
func (t *Tree[T]) Slots() int {
	return t.nodes.Len()
}

// FreeSlots returns the number of deleted slots waiting to be reused.
func (t *Tree[T]) FreeSlots() int {
	return t.nodes.Free()
}

// Node returns a copy of the node in slot i.
// ok is false if i does not hold a node.
func (t *Tree[T]) Node(i tree.Index) (n tree.Node[T], ok bool) {
	if !t.nodes.Valid(i) {
		return
	}
	return *t.nodes.At(i), true
}

// Reset removes every key. The arena keeps its capacity.
func (t *Tree[T]) Reset() {
	t.nodes.Reset()
	t.root = tree.None
}

// replace puts repl where old hangs from parent, or makes it the
// root when parent is None.
func (t *Tree[T]) replace(parent, old, repl tree.Index) {
	t.nodes.ReplaceChild(parent, old, repl)
	if parent == tree.None {
		t.root = repl
	}
}
