package iterator

import (
	"go.lepak.sg/flatavl/chops"
	"go.lepak.sg/flatavl/tree"
)

var _ chops.Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree stored in an arena.
// The usage should be pretty familiar:
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	nodes    *tree.Arena[T]
	root, at tree.Index
}

// NewInOrder returns a new InOrder iterator over the tree rooted at
// slot root of nodes.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T any](nodes *tree.Arena[T], root tree.Index) *InOrder[T] {
	return &InOrder[T]{
		nodes: nodes,
		root:  root,
		at:    tree.None,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if i.at == tree.None {
		// After Next returns false, calling it again starts over
		// from the first key.
		i.at = i.nodes.Leftmost(i.root)
	} else {
		i.at = i.nodes.Successor(i.at)
	}

	return i.at != tree.None
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.nodes.At(i.at).Key
}

// Slot returns the arena slot of the current key.
func (i *InOrder[T]) Slot() tree.Index {
	return i.at
}
