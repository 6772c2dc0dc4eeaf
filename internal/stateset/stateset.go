// Package stateset implements the open-addressed hash set the search
// drivers use to deduplicate states by (player position, crates
// bit-vector). The table is externally sized to the solver's capacity
// at construction and never grows; insert on a full table reports
// failure so the caller can surface "capacity exhausted" (spec.md §4.4).
package stateset

import (
	"github.com/cespare/xxhash/v2"

	"github.com/vxmppz/sokosolve/internal/bitset"
)

// Table is a fixed-capacity open-addressed hash set keyed by
// (player, crates). T is the payload stored per key — the search
// drivers instantiate Table[*sokoban.State].
type Table[T any] struct {
	slots []slot[T]
	mask  uint64 // len(slots) is always a power of two
}

type slot[T any] struct {
	occupied bool
	player   int32
	crates   bitset.Set
	value    T
}

// New builds a table with room for at least capacity live entries. The
// backing array is sized to the next power of two above
// capacity*2 (load factor <= 0.5) to keep linear probing short; the
// table still never grows past this fixed size.
func New[T any](capacity int) *Table[T] {
	n := nextPow2(capacity*2 + 1)
	return &Table[T]{slots: make([]slot[T], n), mask: uint64(n - 1)}
}

func nextPow2(n int) int {
	if n < 2 {
		return 2
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Clear logically empties the table without releasing its backing
// array, for reuse across searches on the same context.
func (t *Table[T]) Clear() {
	for i := range t.slots {
		t.slots[i] = slot[T]{}
	}
}

// Lookup returns the stored value for (player, crates) and true if
// present.
func (t *Table[T]) Lookup(player int32, crates bitset.Set) (T, bool) {
	h := hash(player, crates)
	i := h & t.mask
	for {
		s := &t.slots[i]
		if !s.occupied {
			var zero T
			return zero, false
		}
		if s.player == player && bitset.Compare(s.crates, crates) == 0 {
			return s.value, true
		}
		i = (i + 1) & t.mask
	}
}

// Insert adds (player, crates) -> value. It reports false if the
// table has no free slot (capacity exhausted); the caller must check
// Lookup first if duplicate keys are possible, since Insert does not
// itself detect them.
func (t *Table[T]) Insert(player int32, crates bitset.Set, value T) bool {
	h := hash(player, crates)
	i := h & t.mask
	for probes := 0; probes < len(t.slots); probes++ {
		s := &t.slots[i]
		if !s.occupied {
			s.occupied = true
			s.player = player
			s.crates = crates
			s.value = value
			return true
		}
		i = (i + 1) & t.mask
	}
	return false
}

// hash combines a short integer hash over player with an xxhash digest
// over the full crates bit-vector, xored with the player hash shifted
// by one (spec.md §4.3: "SIP-style hash over the full bit-vector,
// XORed with the player hash shifted by one").
func hash(player int32, crates bitset.Set) uint64 {
	ph := playerHash(player)
	ch := crates.Hash()
	return ch ^ ph ^ (ph << 1)
}

func playerHash(player int32) uint64 {
	var buf [4]byte
	buf[0] = byte(player)
	buf[1] = byte(player >> 8)
	buf[2] = byte(player >> 16)
	buf[3] = byte(player >> 24)
	return xxhash.Sum64(buf[:])
}
