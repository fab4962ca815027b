package tree

import "fmt"

// Rotate rotates the subtree at n in direction s and returns
// the node that now occupies n's old position, including the link
// from n's old parent. When that parent is None the caller must
// update its own root.
//
// For example, this is the result of Rotate(n, Left):
//	  -> n            p
//	    / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
// and the result of Rotate(n, Right):
//	  -> n            l
//	    / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
// The ordering k <= l <= m <= n <= o is always preserved.
//
// Heights and balances are not refreshed.
func (a *Arena[T]) Rotate(n Index, s Side) Index {
	p := a.Child(n, s.Opposite())
	if p == None {
		panic(fmt.Sprintf("cannot Rotate %v at slot %d with no %v child", s, n, s.Opposite()))
	}

	inner, parent := a.Child(p, s), a.At(n).Parent

	a.SetChild(n, s.Opposite(), inner)
	a.ReplaceChild(parent, n, p)
	a.SetChild(p, s, n)

	return p
}
