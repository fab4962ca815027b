package tree

import "fmt"

// Arena is a growable array of Nodes with a free list of released
// slots. Released slots are reused, most recently released first,
// before the array grows.
//
// The zero Arena is empty and ready to use.
// Arena does not know about any tree-wide invariant: keeping links
// consistent is up to the caller.
//
// Pointers returned by At are only valid until the next Allocate,
// which may move the backing array.
type Arena[T any] struct {
	nodes []Node[T]
	free  []Index
}

// Allocate stores key in a leaf node whose parent is parent and
// returns its slot. The slot is the one reported by Next.
func (a *Arena[T]) Allocate(key T, parent Index) Index {
	n := Node[T]{
		Key:    key,
		Left:   None,
		Right:  None,
		Parent: parent,
		Height: 1,
		live:   true,
	}

	if l := len(a.free); l > 0 {
		i := a.free[l-1]
		a.free = a.free[:l-1]
		a.nodes[i] = n
		return i
	}

	a.nodes = append(a.nodes, n)
	return Index(len(a.nodes) - 1)
}

// Release clears slot i and puts it on the free list.
// The links of other nodes that point at i are not touched.
func (a *Arena[T]) Release(i Index) {
	if !a.Valid(i) {
		panic(fmt.Sprintf("cannot Release slot %d: not a live node", i))
	}

	a.nodes[i] = Node[T]{
		Left:   None,
		Right:  None,
		Parent: None,
	}
	a.free = append(a.free, i)
}

// Next returns the slot that the next call to Allocate will use.
func (a *Arena[T]) Next() Index {
	if l := len(a.free); l > 0 {
		return a.free[l-1]
	}
	return Index(len(a.nodes))
}

// Valid reports whether i refers to a live node.
func (a *Arena[T]) Valid(i Index) bool {
	return i >= 0 && int(i) < len(a.nodes) && a.nodes[i].live
}

// At returns the node in slot i. It panics if i is not a live node.
func (a *Arena[T]) At(i Index) *Node[T] {
	if !a.Valid(i) {
		panic(fmt.Sprintf("cannot access slot %d: not a live node", i))
	}
	return &a.nodes[i]
}

// Len returns the number of slots ever allocated, live or free.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// Free returns the number of released slots waiting to be reused.
func (a *Arena[T]) Free() int {
	return len(a.free)
}

// Live returns the number of live nodes.
func (a *Arena[T]) Live() int {
	return len(a.nodes) - len(a.free)
}

// FreeList returns a copy of the free list, next slot to be reused last.
func (a *Arena[T]) FreeList() []Index {
	out := make([]Index, len(a.free))
	copy(out, a.free)
	return out
}

// Reset releases every slot. The backing arrays are kept.
func (a *Arena[T]) Reset() {
	for i := range a.nodes {
		a.nodes[i] = Node[T]{}
	}
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

// Height returns the height of the node in slot i,
// or 0 if i is None.
func (a *Arena[T]) Height(i Index) int {
	if i == None {
		return 0
	}
	return a.At(i).Height
}

// Refresh recomputes the Height and Balance of slot i
// from the current heights of its children.
func (a *Arena[T]) Refresh(i Index) {
	n := a.At(i)
	lh, rh := a.Height(n.Left), a.Height(n.Right)

	if lh > rh {
		n.Height = lh + 1
	} else {
		n.Height = rh + 1
	}
	n.Balance = rh - lh
}

// Child returns the child of slot i on side s.
func (a *Arena[T]) Child(i Index, s Side) Index {
	return *a.At(i).child(s)
}

// SetChild makes c the child of i on side s, and i the parent of c.
// c may be None to detach that side.
func (a *Arena[T]) SetChild(i Index, s Side, c Index) {
	*a.At(i).child(s) = c
	if c != None {
		a.At(c).Parent = i
	}
}

// SideOf returns the side of parent that c hangs from.
// It panics if c is not a child of parent.
func (a *Arena[T]) SideOf(parent, c Index) Side {
	p := a.At(parent)
	switch c {
	case p.Left:
		return Left
	case p.Right:
		return Right
	default:
		panic(fmt.Sprintf("cannot find side: slot %d is not a child of %d", c, parent))
	}
}

// ReplaceChild swaps the child old of parent for repl, keeping
// the side old was on, and points repl back at parent.
// If parent is None, only repl's parent link is updated: the
// caller owns the root.
func (a *Arena[T]) ReplaceChild(parent, old, repl Index) {
	if parent != None {
		*a.At(parent).child(a.SideOf(parent, old)) = repl
	}
	if repl != None {
		a.At(repl).Parent = parent
	}
}
