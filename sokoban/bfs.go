package sokoban

import "github.com/vxmppz/sokosolve/internal/bitset"

// SolveBFS runs an uninformed breadth-first search for a sequence of
// moves that leaves every crate on a goal (spec.md §4.7). Because
// every move costs 1, any push that produces the goal configuration is
// optimal, so the goal test runs at child-generation time rather than
// at expansion time.
//
// maxIterations caps the number of state *expansions*; 0 disables the
// cap (the arena's fixed capacity still applies). SolveBFS refuses to
// run — returning an unsolved, not-limit-exceeded Result — when
// problem.PotentiallySolvable is false.
func (ctx *Context) SolveBFS(problem *Problem, maxIterations int64) Result {
	if !problem.PotentiallySolvable {
		return Result{}
	}

	ctx.resetArena()

	root, _ := ctx.newState() // capacity >= 1 is enforced by CreateContext
	root.Player = problem.PlayerInitial
	root.Crates = problem.CratesInitial
	root.cost = 0
	ctx.table.Insert(root.Player, root.Crates, root)

	directions := ctx.directions()
	current := int32(0)
	var iterations int64

	for current < ctx.freeState {
		if maxIterations > 0 && iterations >= maxIterations {
			return Result{LimitExceeded: true, Iterations: iterations}
		}
		iterations++

		parent := &ctx.stateCache[current]
		current++

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

			if _, exists := ctx.table.Lookup(child.player, child.crates); exists {
				if child.pushed {
					ctx.rollbackCrateView()
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
			next.cost = parent.cost + 1
			ctx.table.Insert(next.Player, next.Crates, next)
		}
	}

	return Result{Iterations: iterations}
}
