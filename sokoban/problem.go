package sokoban

import "github.com/vxmppz/sokosolve/internal/bitset"

// Tile alphabet recognized by Parse (spec.md §6). Any byte not in this
// table is skipped without advancing the cell cursor; a NUL byte ends
// parsing early.
const (
	tileWall             = 'W'
	tileWallLower        = 'w'
	tileEmpty            = '.'
	tileGoal             = '0'
	tileCrate            = '1'
	tilePlayer           = 'A'
	tilePlayerLower      = 'a'
	tileCrateOnGoal      = 'g'
	tileCrateOnGoalUpper = 'G'
	tilePlayerOnGoal     = '+'
)

// Problem is the static puzzle plus its derived pre-analysis: the
// deadlock map, the per-cell distance-to-goal table and the
// compilable/potentially-solvable flags (spec.md §3, §4.5).
type Problem struct {
	ctx *Context

	Walls         bitset.Set
	Goals         bitset.Set
	CratesInitial bitset.Set
	PlayerInitial int32
	GoalCount     int32
	CrateCount    int32

	Deadlocks  bitset.Set
	Heuristics []int32 // len == ctx.Area; Area itself is the "unreachable" sentinel

	Compilable          bool
	PotentiallySolvable bool
}

// AllocateProblem allocates a Problem under ctx with its bit-vectors
// and heuristic table sized to ctx.Area. A Problem may be re-parsed any
// number of times; Parse resets these buffers each call.
func AllocateProblem(ctx *Context) *Problem {
	area := int(ctx.Area)
	return &Problem{
		ctx:           ctx,
		Walls:         bitset.New(area),
		Goals:         bitset.New(area),
		CratesInitial: bitset.New(area),
		Deadlocks:     bitset.New(area),
		Heuristics:    make([]int32, area),
	}
}

// Close drops the problem's buffers. See Context.Close for why this is
// a GC hint rather than a manual free.
func (p *Problem) Close() {
	p.ctx = nil
	p.Walls = bitset.Set{}
	p.Goals = bitset.Set{}
	p.CratesInitial = bitset.Set{}
	p.Deadlocks = bitset.Set{}
	p.Heuristics = nil
}

func isRecognizedTile(r byte) bool {
	switch r {
	case tileWall, tileWallLower, tileEmpty, tileGoal, tileCrate,
		tilePlayer, tilePlayerLower, tileCrateOnGoal, tileCrateOnGoalUpper, tilePlayerOnGoal:
		return true
	default:
		return false
	}
}

// Parse tokenizes text into the padded grid (spec.md §4.5, §6) and runs
// the full static pre-analysis: the 2x2 board-wide deadlock scan, the
// reverse-push deadlock/heuristic map, the initial-crate-on-deadlock
// check and player reachability. It returns the compilable flag;
// PotentiallySolvable is set as a side effect and gates the search
// drivers.
func (p *Problem) Parse(text string) bool {
	ctx := p.ctx
	p.Walls.Fill()
	p.Goals.Reset()
	p.CratesInitial.Reset()
	for i := range p.Heuristics {
		p.Heuristics[i] = ctx.Area
	}
	p.Deadlocks.Reset()
	p.PlayerInitial = 0
	p.GoalCount = 0
	p.CrateCount = 0

	interiorW := ctx.Width - 2
	interiorH := ctx.Height - 2
	x, y := int32(1), int32(1)
	var playerCount int32

	for i := 0; i < len(text); i++ {
		r := text[i]
		if r == 0 {
			break
		}
		if !isRecognizedTile(r) {
			continue
		}
		if y > interiorH {
			break
		}
		pos := ctx.Pos(x, y)
		switch r {
		case tileWall, tileWallLower:
			// wall bit already set by the all-ones initialization.
		case tileEmpty:
			p.Walls.Clear(pos)
		case tileGoal:
			p.Walls.Clear(pos)
			p.Goals.Set(pos)
			p.GoalCount++
		case tileCrate:
			p.Walls.Clear(pos)
			p.CratesInitial.Set(pos)
			p.CrateCount++
		case tilePlayer, tilePlayerLower:
			p.Walls.Clear(pos)
			p.PlayerInitial = pos
			playerCount++
		case tileCrateOnGoal, tileCrateOnGoalUpper:
			p.Walls.Clear(pos)
			p.Goals.Set(pos)
			p.CratesInitial.Set(pos)
			p.GoalCount++
			p.CrateCount++
		case tilePlayerOnGoal:
			p.Walls.Clear(pos)
			p.Goals.Set(pos)
			p.PlayerInitial = pos
			p.GoalCount++
			playerCount++
		}
		x++
		if x > interiorW {
			x = 1
			y++
		}
	}

	p.Compilable = playerCount == 1 &&
		p.GoalCount == p.CrateCount &&
		!bitset.Equals(p.CratesInitial, p.Goals)

	if !p.Compilable {
		p.PotentiallySolvable = false
		return p.Compilable
	}

	if p.checkAll2x2Deadlock() {
		p.PotentiallySolvable = false
		return p.Compilable
	}

	p.generateDeadlockMap()
	noCrateOnDeadlock := !bitset.CoversAny(p.CratesInitial, p.Deadlocks)
	reachable := p.checkReachability()
	p.PotentiallySolvable = noCrateOnDeadlock && reachable
	return p.Compilable
}

// checkAll2x2Deadlock scans every 2x2 window of the padded grid; if a
// window is entirely wall-or-crate and at least one of its crates is
// not on a goal, the level is statically unsolvable (spec.md §4.5).
func (p *Problem) checkAll2x2Deadlock() bool {
	ctx := p.ctx
	for y := int32(0); y < ctx.Height-1; y++ {
		for x := int32(0); x < ctx.Width-1; x++ {
			corners := [4]int32{
				ctx.Pos(x, y), ctx.Pos(x+1, y),
				ctx.Pos(x, y+1), ctx.Pos(x+1, y+1),
			}
			allWallOrCrate := true
			hasUnsafeCrate := false
			for _, c := range corners {
				isWall := p.Walls.Get(c)
				isCrate := p.CratesInitial.Get(c)
				if !isWall && !isCrate {
					allWallOrCrate = false
					break
				}
				if isCrate && !p.Goals.Get(c) {
					hasUnsafeCrate = true
				}
			}
			if allWallOrCrate && hasUnsafeCrate {
				return true
			}
		}
	}
	return false
}

// generateDeadlockMap runs a reverse-push breadth-first expansion from
// every goal cell (spec.md §4.5): from a reached cell c, a crate can be
// pulled from neighbour n = c + d to c only when the cell behind it,
// n + d, is not a wall. Reached cells are marked reachable (not a
// deadlock) and given the BFS depth as their heuristic distance, an
// admissible lower bound on the true per-crate push distance.
func (p *Problem) generateDeadlockMap() {
	ctx := p.ctx
	p.Deadlocks.Fill()
	for i := range p.Heuristics {
		p.Heuristics[i] = ctx.Area
	}

	directions := ctx.directionDeltas()
	queue := make([]int32, 0, ctx.Area)
	for pos := int32(0); pos < ctx.Area; pos++ {
		if p.Goals.Get(pos) && p.Deadlocks.Get(pos) {
			p.Deadlocks.Clear(pos)
			p.Heuristics[pos] = 0
			queue = append(queue, pos)
		}
	}

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		for _, d := range directions {
			n := c + d
			if n < 0 || n >= ctx.Area || !p.Deadlocks.Get(n) {
				continue
			}
			if p.Walls.Get(n) {
				continue
			}
			behind := n + d
			if behind < 0 || behind >= ctx.Area || p.Walls.Get(behind) {
				continue
			}
			p.Deadlocks.Clear(n)
			p.Heuristics[n] = p.Heuristics[c] + 1
			queue = append(queue, n)
		}
	}
}

// checkReachability flood-fills from the player across non-wall cells
// and reports whether every "free object" cell (a crate xor a goal,
// i.e. a mismatched cell) is reachable (spec.md §4.5, the player-seed
// variant adopted per SPEC_FULL.md §14).
func (p *Problem) checkReachability() bool {
	ctx := p.ctx
	free := bitset.New(int(ctx.Area))
	bitset.Xor(free, p.CratesInitial, p.Goals)

	visited := bitset.New(int(ctx.Area))
	directions := ctx.directionDeltas()
	queue := make([]int32, 0, ctx.Area)
	visited.Set(p.PlayerInitial)
	queue = append(queue, p.PlayerInitial)

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		for _, d := range directions {
			n := c + d
			if n < 0 || n >= ctx.Area || p.Walls.Get(n) || visited.Get(n) {
				continue
			}
			visited.Set(n)
			queue = append(queue, n)
		}
	}
	return bitset.CoversAll(free, visited)
}
