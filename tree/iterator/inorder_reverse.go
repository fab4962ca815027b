package iterator

import (
	"go.lepak.sg/flatavl/chops"
	"go.lepak.sg/flatavl/tree"
)

var _ chops.Iterator[int] = (*InOrderReverse[int])(nil)

// InOrderReverse is an iterator object over a binary tree stored in
// an arena. Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[T any] struct {
	nodes    *tree.Arena[T]
	root, at tree.Index
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at slot root of nodes.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[T any](nodes *tree.Arena[T], root tree.Index) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		nodes: nodes,
		root:  root,
		at:    tree.None,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil {
		return false
	}

	if i.at == tree.None {
		i.at = i.nodes.Rightmost(i.root)
	} else {
		i.at = i.nodes.Predecessor(i.at)
	}

	return i.at != tree.None
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.nodes.At(i.at).Key
}

// Slot returns the arena slot of the current key.
func (i *InOrderReverse[T]) Slot() tree.Index {
	return i.at
}
