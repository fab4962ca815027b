package avl

import (
	"math/rand"
)

// BuildRandom builds a tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := New[int]()
	for _, k := range rd.Perm(num) {
		tr.Insert(k)
	}

	return tr
}
