// Package bitset implements the fixed-length bit-vector primitive the
// solver uses to represent wall, goal, crate and deadlock masks over a
// padded Sokoban grid. Every vector in a given arena has the same word
// length, fixed at construction, matching the teacher's preference for
// preallocated, non-growing collections.
package bitset

import "github.com/cespare/xxhash/v2"

const wordBits = 64

// Set is a fixed-length array of 64-bit words. The zero Set is not
// usable; construct one with New or NewView.
type Set struct {
	words []uint64
}

// New allocates a Set able to address bit indices [0, nbits).
func New(nbits int) Set {
	return Set{words: make([]uint64, WordsFor(nbits))}
}

// NewView wraps an existing word slice (e.g. a slice into a larger
// arena) as a Set without copying. The caller owns the backing slice's
// lifetime.
func NewView(words []uint64) Set {
	return Set{words: words}
}

// WordsFor returns the number of 64-bit words needed to hold nbits.
func WordsFor(nbits int) int {
	return (nbits + wordBits - 1) / wordBits
}

// Words exposes the backing word slice, e.g. to bump-allocate a view
// into a shared arena or to hash the raw bytes.
func (s Set) Words() []uint64 { return s.words }

// Len returns the bit capacity of the set (words * 64).
func (s Set) Len() int { return len(s.words) * wordBits }

// Set sets bit p.
func (s Set) Set(p int32) {
	s.words[p/wordBits] |= 1 << uint(p%wordBits)
}

// Clear clears bit p.
func (s Set) Clear(p int32) {
	s.words[p/wordBits] &^= 1 << uint(p%wordBits)
}

// Get reports whether bit p is set.
func (s Set) Get(p int32) bool {
	return s.words[p/wordBits]&(1<<uint(p%wordBits)) != 0
}

// Fill sets every addressable bit (used to initialize the wall mask to
// "all wall" before carving out the interior).
func (s Set) Fill() {
	for i := range s.words {
		s.words[i] = ^uint64(0)
	}
}

// Reset clears every bit.
func (s Set) Reset() {
	for i := range s.words {
		s.words[i] = 0
	}
}

// Copy copies src into s. Both must have the same word length.
func (s Set) Copy(src Set) {
	copy(s.words, src.words)
}

// Equals reports whether a and b have identical bits.
func Equals(a, b Set) bool {
	if len(a.words) != len(b.words) {
		return false
	}
	for i := range a.words {
		if a.words[i] != b.words[i] {
			return false
		}
	}
	return true
}

// CoversAll reports whether every set bit of under is also set in cover.
func CoversAll(under, cover Set) bool {
	for i := range under.words {
		if under.words[i]&^cover.words[i] != 0 {
			return false
		}
	}
	return true
}

// CoversAny reports whether under and cover share at least one set bit.
func CoversAny(under, cover Set) bool {
	for i := range under.words {
		if under.words[i]&cover.words[i] != 0 {
			return true
		}
	}
	return false
}

// Xor writes a ^ b into dst. dst may alias a or b.
func Xor(dst, a, b Set) {
	for i := range dst.words {
		dst.words[i] = a.words[i] ^ b.words[i]
	}
}

// Compare performs a lexicographic word-wise comparison, returning
// +1, 0 or -1. It is only used to break ties in hash-set equality; it
// is order-sensitive but consistent for a fixed word length.
func Compare(a, b Set) int {
	for i := range a.words {
		if a.words[i] < b.words[i] {
			return -1
		}
		if a.words[i] > b.words[i] {
			return 1
		}
	}
	return 0
}

// Hash returns an xxhash digest of the vector's raw bits. Two equal
// vectors always hash equal; it is the crate-side half of the
// hash-set's combined key hash (see internal/stateset).
func (s Set) Hash() uint64 {
	d := xxhash.New()
	buf := make([]byte, 8)
	for _, w := range s.words {
		putUint64(buf, w)
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func putUint64(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
