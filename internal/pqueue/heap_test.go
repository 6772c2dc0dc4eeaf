package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// node is a minimal pqueue.Item used only by these tests.
type node struct {
	priority int32
	index    int32
	label    string
}

func (n *node) Priority() int32      { return n.priority }
func (n *node) HeapIndex() int32     { return n.index }
func (n *node) SetHeapIndex(i int32) { n.index = i }

func TestPopOrder(t *testing.T) {
	h := New(4)
	items := []*node{
		{priority: 10, label: "a"},
		{priority: 5, label: "b"},
		{priority: 15, label: "c"},
		{priority: 1, label: "d"},
	}
	for _, it := range items {
		h.Insert(it)
	}

	want := []int32{1, 5, 10, 15}
	for _, p := range want {
		got, ok := h.PopMin()
		require.True(t, ok)
		require.Equal(t, p, got.Priority())
	}
	_, ok := h.PopMin()
	require.False(t, ok)
}

func TestHeapIndexInvariant(t *testing.T) {
	h := New(8)
	var items []*node
	for i := 0; i < 8; i++ {
		n := &node{priority: int32(rand.Intn(100)), index: NotInHeap}
		items = append(items, n)
		h.Insert(n)
	}
	for _, it := range items {
		require.GreaterOrEqual(t, it.HeapIndex(), int32(1))
	}

	popped, ok := h.PopMin()
	require.True(t, ok)
	require.Equal(t, NotInHeap, popped.(*node).HeapIndex())
}

func TestDecreaseKey(t *testing.T) {
	h := New(4)
	a := &node{priority: 10, label: "a"}
	b := &node{priority: 20, label: "b"}
	c := &node{priority: 30, label: "c"}
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	// Lower c's priority below a's and sift it up from its own slot.
	c.priority = 1
	h.SiftUp(c.HeapIndex())

	got, ok := h.PopMin()
	require.True(t, ok)
	require.Equal(t, "c", got.(*node).label)
}

func TestResetEmptiesHeap(t *testing.T) {
	h := New(4)
	h.Insert(&node{priority: 1})
	h.Insert(&node{priority: 2})
	require.Equal(t, 2, h.Len())
	h.Reset()
	require.Equal(t, 0, h.Len())
	_, ok := h.PopMin()
	require.False(t, ok)
}
