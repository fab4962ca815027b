// Package tree holds the storage shared by the tree implementations
// in this module: a flat arena of nodes linked by slot index instead
// of by pointer.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Index identifies a node by its slot in an Arena.
type Index int

// None is the Index of a missing node: the parent of the root,
// or an absent child.
const None Index = -1

// Side selects one of the two children of a node.
// Code that handles the left- and right-heavy cases of a tree
// can be written once and mirrored with Side.Opposite.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) Opposite() Side {
	return 1 - s
}

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "<invalid tree.Side>"
	}
}

// Node is one slot of an Arena.
// Height counts nodes on the longest path down to a leaf, so a leaf
// has height 1 and a missing child has height 0.
// Balance is the height of the right subtree minus the height of
// the left subtree.
type Node[T any] struct {
	Key                 T
	Left, Right, Parent Index
	Height, Balance     int

	live bool
}

func (n *Node[T]) child(s Side) *Index {
	if s == Left {
		return &n.Left
	}
	return &n.Right
}

// IsLeaf reports whether n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == None && n.Right == None
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare orders any two keys that support the < and > operators.
// Trees over other key types supply their own comparison with the
// same signature.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
