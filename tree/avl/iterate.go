package avl

import (
	"context"

	"go.lepak.sg/flatavl/chops"
	"go.lepak.sg/flatavl/tree"
	"go.lepak.sg/flatavl/tree/iterator"
)

// First returns the slot of the smallest key, or tree.None.
func (t *Tree[T]) First() tree.Index {
	return t.nodes.Leftmost(t.root)
}

// Last returns the slot of the largest key, or tree.None.
func (t *Tree[T]) Last() tree.Index {
	return t.nodes.Rightmost(t.root)
}

// Successor returns the slot following i in order, or tree.None if
// i holds the largest key. It panics if i does not hold a node.
func (t *Tree[T]) Successor(i tree.Index) tree.Index {
	return t.nodes.Successor(i)
}

// Predecessor returns the slot preceding i in order, or tree.None if
// i holds the smallest key. It panics if i does not hold a node.
func (t *Tree[T]) Predecessor(i tree.Index) tree.Index {
	return t.nodes.Predecessor(i)
}

// Values returns every key in ascending order.
// The slice is a copy and stays valid across later mutations.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.Len())
	for i := t.First(); i != tree.None; i = t.nodes.Successor(i) {
		out = append(out, t.nodes.At(i).Key)
	}
	return out
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(&t.nodes, t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(&t.nodes, t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine(ctx)
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// The tree must not be modified until Items is closed.
func (t *Tree[T]) InOrderCoroutine(ctx context.Context) chops.CoIterator[T] {
	return chops.CoIterate[T](ctx, t.InOrderIterator())
}
