package avl

import (
	"go.lepak.sg/flatavl/tree"
)

// Check verifies the tree's invariants and returns an error matching
// ErrCorrupt that describes the first violation found.
// It is meant for tests and debugging; it visits every node.
func (t *Tree[T]) Check() error {
	if t.root == tree.None {
		if live := t.nodes.Live(); live != 0 {
			return corrupt("empty tree with %d live slots", live)
		}
	} else if !t.nodes.Valid(t.root) {
		return corrupt("root %d is not a live slot", t.root)
	}

	_, count, err := t.checkup(t.root, tree.None)
	if err != nil {
		return err
	}
	if live := t.nodes.Live(); count != live {
		return corrupt("%d nodes reachable from the root, %d live slots", count, live)
	}

	// subtree checks only compare neighbours, this covers the rest
	var prev tree.Index = tree.None
	for i := t.First(); i != tree.None; i = t.nodes.Successor(i) {
		if prev != tree.None && t.cmp(t.nodes.At(prev).Key, t.nodes.At(i).Key) == tree.Greater {
			return corrupt("slot %d (%v) comes before slot %d (%v)",
				prev, t.nodes.At(prev).Key, i, t.nodes.At(i).Key)
		}
		prev = i
	}

	seen := make(map[tree.Index]struct{}, t.nodes.Free())
	for _, i := range t.nodes.FreeList() {
		if t.nodes.Valid(i) {
			return corrupt("free slot %d holds a live node", i)
		}
		if i < 0 || int(i) >= t.nodes.Len() {
			return corrupt("free slot %d out of range", i)
		}
		if _, dup := seen[i]; dup {
			return corrupt("free slot %d listed twice", i)
		}
		seen[i] = struct{}{}
	}

	return nil
}

// checkup checks the subtree at i, whose parent should be parent,
// and returns its height and size.
func (t *Tree[T]) checkup(i, parent tree.Index) (height, count int, err error) {
	if i == tree.None {
		return 0, 0, nil
	}
	if !t.nodes.Valid(i) {
		return 0, 0, corrupt("slot %d is linked from %d but is not a live node", i, parent)
	}

	n := t.nodes.At(i)
	if n.Parent != parent {
		return 0, 0, corrupt("slot %d has parent %d, want %d", i, n.Parent, parent)
	}

	if n.Left != tree.None && t.nodes.Valid(n.Left) &&
		t.cmp(t.nodes.At(n.Left).Key, n.Key) == tree.Greater {
		return 0, 0, corrupt("slot %d: left child %d has a greater key", i, n.Left)
	}
	if n.Right != tree.None && t.nodes.Valid(n.Right) &&
		t.cmp(t.nodes.At(n.Right).Key, n.Key) == tree.Less {
		return 0, 0, corrupt("slot %d: right child %d has a smaller key", i, n.Right)
	}

	lh, lc, err := t.checkup(n.Left, i)
	if err != nil {
		return 0, 0, err
	}
	rh, rc, err := t.checkup(n.Right, i)
	if err != nil {
		return 0, 0, err
	}

	height = lh + 1
	if rh > lh {
		height = rh + 1
	}

	switch {
	case n.Height != height:
		return 0, 0, corrupt("slot %d: height %d, want %d", i, n.Height, height)
	case n.Balance != rh-lh:
		return 0, 0, corrupt("slot %d: balance %d, want %d", i, n.Balance, rh-lh)
	case n.Balance < -1 || n.Balance > 1:
		return 0, 0, corrupt("slot %d: out of balance (%+d)", i, n.Balance)
	}

	return height, lc + rc + 1, nil
}
