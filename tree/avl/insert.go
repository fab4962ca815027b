package avl

import "go.lepak.sg/flatavl/tree"

// Insert adds k to the tree, even if an equal key is already there,
// and returns the slot it was stored in.
func (t *Tree[T]) Insert(k T) tree.Index {
	_, hint, parent := t.locate(k, true)

	i := t.nodes.Allocate(k, parent)
	if i != hint {
		panic("impossible")
	}

	if parent == tree.None {
		t.root = i
		return i
	}

	side := tree.Right
	if t.cmp(k, t.nodes.At(parent).Key) == tree.Less {
		side = tree.Left
	}
	if t.nodes.Child(parent, side) != tree.None {
		panic("impossible")
	}
	t.nodes.SetChild(parent, side, i)

	t.rebalance(parent)

	return i
}
