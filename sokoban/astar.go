package sokoban

import (
	"math/bits"

	"github.com/vxmppz/sokosolve/internal/bitset"
	"github.com/vxmppz/sokosolve/internal/pqueue"
)

// SolveAStar runs a weighted best-first search over the min-heap
// frontier (spec.md §4.8). weights.GFactor/HFactor select the preset:
// PresetUniform, PresetAStar or PresetGreedy, or any custom weighting.
// As with SolveBFS, every move costs 1 so the heuristic stays
// consistent and the goal test runs at child-generation time.
//
// maxIterations caps the number of state *pops off the heap*; 0
// disables the cap. SolveAStar refuses to run when
// problem.PotentiallySolvable is false.
func (ctx *Context) SolveAStar(problem *Problem, weights Weights, maxIterations int64) Result {
	if !problem.PotentiallySolvable {
		return Result{}
	}

	ctx.resetArena()

	root, _ := ctx.newState()
	root.Player = problem.PlayerInitial
	root.Crates = problem.CratesInitial
	root.cost = 0
	root.heuristic = sumCrateHeuristics(problem, root.Crates)
	root.priority = weights.HFactor*root.heuristic + weights.GFactor*root.cost
	ctx.table.Insert(root.Player, root.Crates, root)
	ctx.heap.Insert(root)

	directions := ctx.directions()
	var iterations int64

	for {
		if maxIterations > 0 && iterations >= maxIterations {
			return Result{LimitExceeded: true, Iterations: iterations}
		}

		popped, ok := ctx.heap.PopMin()
		if !ok {
			return Result{Iterations: iterations}
		}
		iterations++
		parent := popped.(*State)

		for _, dir := range directions {
			child := problem.tryExpand(ctx, parent, dir)
			if child.outOfSpace {
				return Result{LimitExceeded: true, Iterations: iterations}
			}
			if !child.ok {
				continue
			}

			if child.pushed && bitset.Equals(child.crates, problem.Goals) {
				actions := reconstruct(parent, child.action, parent.cost+1)
				return Result{Solved: true, Actions: actions, Iterations: iterations}
			}

			childCost := parent.cost + 1

			if twin, exists := ctx.table.Lookup(child.player, child.crates); exists {
				if child.pushed {
					ctx.rollbackCrateView()
				}
				if twin.heapIndex != pqueue.NotInHeap && twin.cost > childCost {
					twin.Parent = parent
					twin.Action = child.action
					twin.cost = childCost
					twin.priority = weights.HFactor*twin.heuristic + weights.GFactor*twin.cost
					ctx.heap.SiftUp(twin.heapIndex)
				}
				continue
			}

			next, allocated := ctx.newState()
			if !allocated {
				if child.pushed {
					ctx.rollbackCrateView()
				}
				return Result{LimitExceeded: true, Iterations: iterations}
			}
			next.Parent = parent
			next.Action = child.action
			next.Player = child.player
			next.Crates = child.crates
			next.cost = childCost
			// The heuristic depends only on crate positions: a non-push
			// child shares the parent's heuristic exactly.
			if child.pushed {
				next.heuristic = sumCrateHeuristics(problem, next.Crates)
			} else {
				next.heuristic = parent.heuristic
			}
			next.priority = weights.HFactor*next.heuristic + weights.GFactor*next.cost
			ctx.table.Insert(next.Player, next.Crates, next)
			ctx.heap.Insert(next)
		}
	}
}

// sumCrateHeuristics sums, over every crate in crates, the precomputed
// distance from that crate's cell to the nearest reachable goal
// (spec.md §3, §4.5). A crate on a cell with no route to any goal
// contributes problem's area sentinel, which makes the state
// unreachable in practice without needing a special "impossible" flag.
func sumCrateHeuristics(problem *Problem, crates bitset.Set) int32 {
	var total int32
	words := crates.Words()
	for wi, w := range words {
		for w != 0 {
			offset := bits.TrailingZeros64(w)
			pos := wi*64 + offset
			total += problem.Heuristics[pos]
			w &^= 1 << uint(offset)
		}
	}
	return total
}
