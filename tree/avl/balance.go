package avl

import "go.lepak.sg/flatavl/tree"

// rebalance refreshes heights from i up to the root, rotating
// wherever a node is out of balance. It never stops early: a
// deletion can unbalance several ancestors.
func (t *Tree[T]) rebalance(i tree.Index) {
	for i != tree.None {
		t.nodes.Refresh(i)

		n := t.nodes.At(i)
		if n.Balance < -1 || n.Balance > 1 {
			// the node now above i has stale height, so the walk
			// has to pass through it before going further up
			i = t.rotate(i)
		} else {
			i = n.Parent
		}
	}
}

// rotate restores balance at i, which leans by 2 towards one side.
// A zig-zag (the heavy child leaning the other way) takes two
// rotations, otherwise one.
//
// Left-heavy single rotation, i = n:
//	    n            l
//	   / \          / \
//	  l   o   ->   k   n
//	 /                  \
//	k                    o
// Left-heavy double rotation:
//	    n            n            m
//	   / \          / \          / \
//	  l   o   ->   m   o   ->   l   n
//	   \          /                  \
//	    m        l                    o
// The right-heavy cases are the mirror image.
//
// i is refreshed here since the walk in rebalance continues above
// it. rotate returns where that walk resumes: the old heavy child,
// which is either the new subtree root (single rotation) or a child
// of it whose own children changed (double rotation).
func (t *Tree[T]) rotate(i tree.Index) tree.Index {
	balance := t.nodes.At(i).Balance

	heavy := tree.Left
	if balance > 0 {
		heavy = tree.Right
	}

	sub := t.nodes.Child(i, heavy)
	if balance*t.nodes.At(sub).Balance < 0 {
		t.nodes.Rotate(sub, heavy)
	}

	top := t.nodes.Rotate(i, heavy.Opposite())
	if t.nodes.At(top).Parent == tree.None {
		t.root = top
	}

	t.nodes.Refresh(i)

	return sub
}
