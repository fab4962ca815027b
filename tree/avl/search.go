package avl

import "go.lepak.sg/flatavl/tree"

// Find searches for k.
// If found, i is the slot of the first node holding k on the way
// down from the root, and parent is its parent.
// Otherwise i is the slot the next insert will use and parent is
// the node it would hang from (None for an empty tree).
func (t *Tree[T]) Find(k T) (found bool, i, parent tree.Index) {
	return t.locate(k, false)
}

// Contains reports whether k is in the tree.
func (t *Tree[T]) Contains(k T) bool {
	found, _, _ := t.locate(k, false)
	return found
}

// locate walks down from the root. Ties go right, so with
// ignoreMatches the walk always ends at the leaf position where k
// belongs, after any keys equal to it.
func (t *Tree[T]) locate(k T, ignoreMatches bool) (found bool, i, parent tree.Index) {
	n, parent := t.root, tree.None

	for n != tree.None {
		node := t.nodes.At(n)
		switch t.cmp(k, node.Key) {
		case tree.Equal:
			if !ignoreMatches {
				return true, n, node.Parent
			}
			n, parent = node.Right, n
		case tree.Greater:
			n, parent = node.Right, n
		case tree.Less:
			n, parent = node.Left, n
		default:
			panic("unreachable")
		}
	}

	return false, t.nodes.Next(), parent
}
