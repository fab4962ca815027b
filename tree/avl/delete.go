package avl

import "go.lepak.sg/flatavl/tree"

// Delete removes one node holding k, the one Find would report.
// It returns false, leaving the tree untouched, if k is not present.
func (t *Tree[T]) Delete(k T) bool {
	found, i, _ := t.locate(k, false)
	if !found {
		return false
	}

	t.deleteAt(i)
	return true
}

// DeleteAt removes the node in slot i, typically a slot returned by
// Insert or Find. If i does not hold a node, DeleteAt returns an
// error matching ErrInvalidIndex and the tree is untouched.
func (t *Tree[T]) DeleteAt(i tree.Index) error {
	if !t.nodes.Valid(i) {
		return invalidIndex(i)
	}

	t.deleteAt(i)
	return nil
}

func (t *Tree[T]) deleteAt(i tree.Index) {
	n := *t.nodes.At(i)

	switch {
	case n.IsLeaf():
		t.replace(n.Parent, i, tree.None)
		t.nodes.Release(i)
		t.rebalance(n.Parent)

	case n.Left == tree.None || n.Right == tree.None:
		child := n.Left
		if child == tree.None {
			child = n.Right
		}

		t.replace(n.Parent, i, child)
		t.nodes.Release(i)
		t.rebalance(child)

	default:
		from := t.promoteSuccessor(n, i)
		t.nodes.Release(i)
		t.rebalance(from)
	}
}

// promoteSuccessor moves the in-order successor of i (whose node,
// with two children, is n) into i's place, and returns the lowest
// node whose subtree lost height. Nothing links to i afterwards.
//
// The successor s has no left child. Either it is i's right child:
//	    i            s
//	   / \          / \
//	  a   s   ->   a   b
//	       \
//	        b
// or it hangs further down, on the left of some p, and its right
// subtree b takes its place there:
//	    i            s
//	   / \          / \
//	  a   c   ->   a   c
//	     /            /
//	    p            p
//	   /            /
//	  s            b
//	   \
//	    b
// s itself is not where heights start going stale: in the first case
// it is s (its left side grew), in the second it is b, or p if b is
// empty.
func (t *Tree[T]) promoteSuccessor(n tree.Node[T], i tree.Index) tree.Index {
	succ := t.nodes.Leftmost(n.Right)
	from := succ

	if succ != n.Right {
		s := *t.nodes.At(succ)

		t.nodes.SetChild(s.Parent, tree.Left, s.Right)
		from = s.Right
		if from == tree.None {
			from = s.Parent
		}

		t.nodes.SetChild(succ, tree.Right, n.Right)
	}

	t.nodes.SetChild(succ, tree.Left, n.Left)
	t.replace(n.Parent, i, succ)

	return from
}
