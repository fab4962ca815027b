package replay

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Reference is an ordered multiset backed by a B-tree. It shares no
// code with the AVL tree, which makes it a fair judge of it.
//
// Equal keys are told apart by insertion sequence, so Values lists
// them in insertion order and Delete removes the oldest.
type Reference[T constraints.Ordered] struct {
	bt  *btree.BTree
	seq uint64
}

type refItem[T constraints.Ordered] struct {
	key T
	seq uint64
}

func (a refItem[T]) Less(than btree.Item) bool {
	b := than.(refItem[T])
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

const referenceDegree = 32

// NewReference returns a Reference holding values.
func NewReference[T constraints.Ordered](values ...T) *Reference[T] {
	r := &Reference[T]{bt: btree.New(referenceDegree)}
	for _, v := range values {
		r.Insert(v)
	}
	return r
}

// Insert adds k, even if an equal key is already there.
func (r *Reference[T]) Insert(k T) {
	r.seq++
	r.bt.ReplaceOrInsert(refItem[T]{key: k, seq: r.seq})
}

// Delete removes one k and reports whether there was one.
func (r *Reference[T]) Delete(k T) bool {
	var hit btree.Item
	// seq 0 sorts before every stored item with this key
	r.bt.AscendGreaterOrEqual(refItem[T]{key: k}, func(i btree.Item) bool {
		if i.(refItem[T]).key == k {
			hit = i
		}
		return false
	})

	if hit == nil {
		return false
	}
	r.bt.Delete(hit)
	return true
}

// Len returns the number of keys, counting duplicates.
func (r *Reference[T]) Len() int {
	return r.bt.Len()
}

// Values returns every key in ascending order.
func (r *Reference[T]) Values() []T {
	out := make([]T, 0, r.bt.Len())
	r.bt.Ascend(func(i btree.Item) bool {
		out = append(out, i.(refItem[T]).key)
		return true
	})
	return out
}
