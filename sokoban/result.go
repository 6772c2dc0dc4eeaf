package sokoban

import (
	"errors"
	"fmt"

	"github.com/vxmppz/sokosolve/internal/bitset"
)

// Result is what a search driver returns (spec.md §6). Actions is the
// only allocation a driver makes outside the context's arena; there is
// no FreeResult entry point because Go's garbage collector reclaims it
// once the caller drops the reference (see Context.Close for the same
// reasoning applied to the arena itself).
type Result struct {
	Solved        bool
	Actions       string // empty unless Solved
	Iterations    int64
	LimitExceeded bool
}

// reconstruct walks parent pointers from parent, prepending each
// state's action, and appends lastAction as the final move (spec.md
// §4.9). cost is the length of the resulting action string (the
// child's path length, parent.cost()+1).
func reconstruct(parent *State, lastAction byte, cost int32) string {
	buf := make([]byte, cost)
	buf[cost-1] = lastAction
	idx := cost - 2
	for cur := parent; cur.Parent != nil; cur = cur.Parent {
		buf[idx] = cur.Action
		idx--
	}
	return string(buf)
}

// Weights configures the A*/weighted-best-first driver's priority
// function, priority = hFactor*heuristic + gFactor*cost (spec.md §4.8).
type Weights struct {
	HFactor int32
	GFactor int32
}

// Presets from spec.md §4.8: uniform-cost search, classic A*, and
// greedy best-first (not optimal).
var (
	PresetUniform = Weights{HFactor: 0, GFactor: 1}
	PresetAStar   = Weights{HFactor: 1, GFactor: 1}
	PresetGreedy  = Weights{HFactor: 1, GFactor: 0}
)

// ErrInvalidSolution is returned by Validate when replaying actions
// against problem does not reach the goal configuration.
var ErrInvalidSolution = errors.New("sokoban: action string does not lead to the goal configuration")

// Validate replays actions against problem's initial configuration,
// enforcing the same move/push legality rules the search drivers use,
// and reports whether the resulting crate configuration equals the
// goals (spec.md §8's "solution validity (round-trip)" property,
// promoted here to an exported, independently reusable check).
func Validate(ctx *Context, problem *Problem, actions string) error {
	player := problem.PlayerInitial
	crates := bitset.New(int(ctx.Area))
	crates.Copy(problem.CratesInitial)

	for i := 0; i < len(actions); i++ {
		a := actions[i]
		d, ok := deltaForAction(ctx, a)
		if !ok {
			return fmt.Errorf("sokoban: unrecognized action byte %q at index %d", a, i)
		}
		newPlayer := player + d
		if problem.Walls.Get(newPlayer) {
			return fmt.Errorf("sokoban: move %q at index %d walks into a wall", a, i)
		}
		pushed := isUpperAction(a)
		if crates.Get(newPlayer) != pushed {
			return fmt.Errorf("sokoban: action %q at index %d disagrees with crate presence at the target cell", a, i)
		}
		if pushed {
			next := newPlayer + d
			if problem.Walls.Get(next) || crates.Get(next) {
				return fmt.Errorf("sokoban: push %q at index %d is blocked", a, i)
			}
			crates.Clear(newPlayer)
			crates.Set(next)
		}
		player = newPlayer
	}

	if !bitset.Equals(crates, problem.Goals) {
		return ErrInvalidSolution
	}
	return nil
}

func isUpperAction(a byte) bool { return a >= 'A' && a <= 'Z' }

func deltaForAction(ctx *Context, a byte) (int32, bool) {
	switch a {
	case 'l', 'L':
		return -1, true
	case 'r', 'R':
		return 1, true
	case 'd', 'D':
		return ctx.Width, true
	case 'u', 'U':
		return -ctx.Width, true
	default:
		return 0, false
	}
}
