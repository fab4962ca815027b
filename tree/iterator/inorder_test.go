package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/flatavl/tree"
)

type built struct {
	nodes *tree.Arena[int]
	root  tree.Index
}

func newEmpty() built {
	return built{nodes: &tree.Arena[int]{}, root: tree.None}
}

func newOne() built {
	a := &tree.Arena[int]{}
	return built{nodes: a, root: a.Allocate(1, tree.None)}
}

// newCompleteTree_2Tall is the complete tree over 1..7 rooted at 4.
// Slots are handed out in a different order from the keys, and one
// slot is released and reused, so that iteration cannot accidentally
// follow slot order.
func newCompleteTree_2Tall() built {
	a := &tree.Arena[int]{}
	a.Release(a.Allocate(100, tree.None))

	slot := map[int]tree.Index{}
	slot[4] = a.Allocate(4, tree.None)
	for _, link := range []struct {
		key, parent int
		side        tree.Side
	}{
		{6, 4, tree.Right},
		{7, 6, tree.Right},
		{2, 4, tree.Left},
		{5, 6, tree.Left},
		{3, 2, tree.Right},
		{1, 2, tree.Left},
	} {
		slot[link.key] = a.Allocate(link.key, slot[link.parent])
		a.SetChild(slot[link.parent], link.side, slot[link.key])
	}

	return built{nodes: a, root: slot[4]}
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name   string
		create func() built
		post   func(t *testing.T, i *InOrder[int])
	}{
		{
			name:   "empty",
			create: newEmpty,
			post: func(t *testing.T, i *InOrder[int]) {
				assert.False(t, i.Next(), "first")
			},
		},
		{
			name:   "one",
			create: newOne,
			post: func(t *testing.T, i *InOrder[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.Equal(t, tree.Index(0), i.Slot())
				assert.False(t, i.Next(), "second")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.True(t, i.Next(), "second")
				assert.Equal(t, 2, i.Item())
				assert.True(t, i.Next(), "third")
				assert.Equal(t, 3, i.Item())
				assert.True(t, i.Next(), "fourth")
				assert.Equal(t, 4, i.Item())
				assert.True(t, i.Next(), "fifth")
				assert.Equal(t, 5, i.Item())
				assert.True(t, i.Next(), "sixth")
				assert.Equal(t, 6, i.Item())
				assert.True(t, i.Next(), "seventh")
				assert.Equal(t, 7, i.Item())
				assert.False(t, i.Next(), "eighth")
			},
		},
		{
			name:   "restart",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder[int]) {
				n := 0
				for i.Next() {
					n++
				}
				assert.Equal(t, 7, n)

				assert.True(t, i.Next(), "again")
				assert.Equal(t, 1, i.Item())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.create()
			tt.post(t, NewInOrder(b.nodes, b.root))
		})
	}
}

func TestInOrder_Nil(t *testing.T) {
	var i *InOrder[int]
	assert.False(t, i.Next())
}
