// Package sokoban implements the Sokoban state-graph search engine:
// the padded-grid state representation, the static deadlock and
// heuristic pre-analysis, the arena-allocated explored/frontier
// structures, crate-push child expansion, and the BFS and A*/weighted
// best-first search drivers. The package is a pure library — it never
// logs, prints or blocks; callers that want diagnostics or a CLI wrap
// it (see cmd/sokoban).
package sokoban

import (
	"github.com/vxmppz/sokosolve/internal/bitset"
	"github.com/vxmppz/sokosolve/internal/pqueue"
	"github.com/vxmppz/sokosolve/internal/stateset"
)

// Context is the arena and scratch space owned by one solver instance:
// preallocated pools for states, crate bit-vectors, the dedup hash set
// and the A* min-heap, sized once at construction time. Running two
// searches against the same Context concurrently is undefined (spec.md
// §5); a Context is not safe for concurrent use.
type Context struct {
	Width, Height int32 // padded dimensions (raw size + 2 for the wall border)
	Area          int32

	capacity    int32 // max number of states a search may hold
	stateCount  int32 // capacity + 1
	bitsetWords int   // words per crates vector, sized to Area

	stateCache []State
	freeState  int32 // bump pointer: next free index into stateCache

	bitsetCache []uint64 // flat arena: stateCount * bitsetWords words
	freeBits    int32    // bump pointer in units of bitsetWords

	table *stateset.Table[*State]
	heap  *pqueue.Heap

	poolsAllocated bool
}

// CreateContext builds a context for a raw_w by raw_h interior grid
// (the padded grid adds a one-tile wall border on every side) and a
// capacity = the maximum number of states any single search against
// this context may ever hold. Internal pools are allocated lazily,
// on the first search (spec.md §4.4).
func CreateContext(rawW, rawH, capacity int) (*Context, error) {
	if rawW < 1 || rawH < 1 {
		return nil, ErrInvalidDimensions
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	width := int32(rawW) + 2
	height := int32(rawH) + 2
	area := width * height
	return &Context{
		Width:       width,
		Height:      height,
		Area:        area,
		capacity:    int32(capacity),
		stateCount:  int32(capacity) + 1,
		bitsetWords: bitset.WordsFor(int(area)),
	}, nil
}

// Pos packs an (x, y) coordinate on the padded grid into a linear
// position, y*width + x, per spec.md §3.
func (c *Context) Pos(x, y int32) int32 { return y*c.Width + x }

// ensurePools lazily allocates the state arena, bit-vector arena, hash
// set and heap the first time any search runs against this context.
func (c *Context) ensurePools() {
	if c.poolsAllocated {
		return
	}
	c.stateCache = make([]State, c.stateCount)
	c.bitsetCache = make([]uint64, int(c.stateCount)*c.bitsetWords)
	c.table = stateset.New[*State](int(c.stateCount))
	c.heap = pqueue.New(int(c.stateCount))
	c.poolsAllocated = true
}

// resetArena rewinds the bump pointers and clears the hash set and
// heap at the start of a new search, reusing the already-allocated
// pools (spec.md §4.4, §4.7, §4.8).
func (c *Context) resetArena() {
	c.ensurePools()
	c.freeState = 0
	c.freeBits = 0
	c.table.Clear()
	c.heap.Reset()
}

// newCrateView bump-allocates a fresh crates bit-vector from the
// context's arena. It reports false ("capacity exhausted") if the
// arena is out of slots.
func (c *Context) newCrateView() (bitset.Set, bool) {
	if c.freeBits >= c.stateCount {
		return bitset.Set{}, false
	}
	start := int(c.freeBits) * c.bitsetWords
	view := bitset.NewView(c.bitsetCache[start : start+c.bitsetWords])
	c.freeBits++
	return view, true
}

// rollbackCrateView releases the most recently bump-allocated crates
// vector. Only ever valid immediately after newCrateView, when the
// child it was allocated for turns out to be an immediate duplicate
// (spec.md §5's "mini-stack discipline").
func (c *Context) rollbackCrateView() {
	c.freeBits--
}

// newState bump-allocates the next free state from the arena. It
// reports false ("capacity exhausted") if the arena is full.
func (c *Context) newState() (*State, bool) {
	if c.freeState >= c.stateCount {
		return nil, false
	}
	s := &c.stateCache[c.freeState]
	*s = State{heapIndex: pqueue.NotInHeap}
	c.freeState++
	return s, true
}

// Close releases the context's arenas. Go's garbage collector reclaims
// the memory once nothing else references the Context; Close exists to
// match the source's explicit free_context entry point and to make the
// arena eligible for collection immediately rather than waiting on the
// caller to drop its last reference.
func (c *Context) Close() {
	c.stateCache = nil
	c.bitsetCache = nil
	c.table = nil
	c.heap = nil
	c.poolsAllocated = false
}
