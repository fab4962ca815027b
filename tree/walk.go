package tree

// Leftmost returns the node with the smallest key in the subtree
// rooted at i, or None if i is None.
func (a *Arena[T]) Leftmost(i Index) Index {
	return a.extreme(i, Left)
}

// Rightmost returns the node with the largest key in the subtree
// rooted at i, or None if i is None.
func (a *Arena[T]) Rightmost(i Index) Index {
	return a.extreme(i, Right)
}

func (a *Arena[T]) extreme(i Index, s Side) Index {
	if i == None {
		return None
	}
	for c := a.Child(i, s); c != None; c = a.Child(i, s) {
		i = c
	}
	return i
}

// Successor returns the node that follows i in order,
// or None if i is the last node.
func (a *Arena[T]) Successor(i Index) Index {
	return a.step(i, Right)
}

// Predecessor returns the node that precedes i in order,
// or None if i is the first node.
func (a *Arena[T]) Predecessor(i Index) Index {
	return a.step(i, Left)
}

// step moves one node in order towards side s: down into the
// subtree on side s if there is one, otherwise up until we arrive
// from the other side.
func (a *Arena[T]) step(i Index, s Side) Index {
	if c := a.Child(i, s); c != None {
		return a.extreme(c, s.Opposite())
	}

	for p := a.At(i).Parent; p != None; p = a.At(p).Parent {
		if a.Child(p, s.Opposite()) == i {
			return p
		}
		i = p
	}

	return None
}
