package sokoban

import (
	"github.com/vxmppz/sokosolve/internal/bitset"
	"github.com/vxmppz/sokosolve/internal/pqueue"
)

// State is one search node: a player position and a crates
// configuration reached from the root by a sequence of moves. Every
// live state is bump-allocated from a Context's state arena and never
// individually freed; the arena itself is rewound between searches
// (spec.md §3).
//
// Cost, Heuristic, Priority and the heap slot are unexported and
// driver-mutated (cost can be lowered by A* decrease-key, priority is
// recomputed alongside it); callers read them through the accessors
// below. Player and Crates are set once at expansion time and never
// change afterwards; Parent and Action are also set then, and A*
// decrease-key overwrites them when it finds a cheaper path.
type State struct {
	Parent *State // nil for the root
	Action byte   // the move character that produced this state, 0 for the root

	Player int32
	Crates bitset.Set // shared with Parent on non-push moves, never copied

	cost      int32 // path length from the root
	heuristic int32 // sum of per-crate distances to nearest goal (A* only)
	priority  int32 // h_factor*heuristic + g_factor*cost (A* only)
	heapIndex int32 // slot in the A* heap, or pqueue.NotInHeap
}

// Cost returns the path length from the root (number of moves).
func (s *State) Cost() int32 { return s.cost }

// Heuristic returns the admissible lower bound used by A* (always 0
// outside of an A*/weighted search).
func (s *State) Heuristic() int32 { return s.heuristic }

// Priority implements pqueue.Item: h_factor*heuristic + g_factor*cost.
func (s *State) Priority() int32 { return s.priority }

// HeapIndex implements pqueue.Item.
func (s *State) HeapIndex() int32 { return s.heapIndex }

// SetHeapIndex implements pqueue.Item.
func (s *State) SetHeapIndex(i int32) { s.heapIndex = i }

var _ pqueue.Item = (*State)(nil)
