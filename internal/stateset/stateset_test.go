package stateset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxmppz/sokosolve/internal/bitset"
)

func crates(bits ...int) bitset.Set {
	s := bitset.New(256)
	for _, b := range bits {
		s.Set(int32(b))
	}
	return s
}

func TestInsertLookup(t *testing.T) {
	tbl := New[int](8)
	require.True(t, tbl.Insert(5, crates(1, 2), 42))

	v, ok := tbl.Lookup(5, crates(1, 2))
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = tbl.Lookup(5, crates(1, 3))
	require.False(t, ok)

	_, ok = tbl.Lookup(6, crates(1, 2))
	require.False(t, ok)
}

func TestClear(t *testing.T) {
	tbl := New[int](8)
	tbl.Insert(1, crates(1), 7)
	tbl.Clear()
	_, ok := tbl.Lookup(1, crates(1))
	require.False(t, ok)
}

func TestCapacityExhausted(t *testing.T) {
	tbl := New[int](1)
	require.True(t, tbl.Insert(1, crates(1), 1))
	// Keep inserting distinct keys until the fixed backing array is full.
	ok := true
	n := 0
	for ok && n < 1000 {
		n++
		ok = tbl.Insert(int32(n+1), crates(n+2), n)
	}
	require.False(t, ok, "table must eventually report full rather than grow")
}

func TestManyDistinctKeys(t *testing.T) {
	tbl := New[int](256)
	for i := 0; i < 200; i++ {
		require.True(t, tbl.Insert(int32(i), crates(i, i+1), i*10))
	}
	for i := 0; i < 200; i++ {
		v, ok := tbl.Lookup(int32(i), crates(i, i+1))
		require.True(t, ok)
		require.Equal(t, i*10, v)
	}
}
