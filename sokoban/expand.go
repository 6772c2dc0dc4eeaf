package sokoban

import "github.com/vxmppz/sokosolve/internal/bitset"

// direction pairs a signed position offset with the lowercase/
// uppercase action letters it produces (spec.md §4.6, §6): directions
// are drawn from {-1, +1, +width, -width} in that fixed order, mapping
// to "lrdu" for a plain move and "LRDU" for a push.
type direction struct {
	delta int32
	lower byte
	upper byte
}

// directionDeltas returns the bare offsets, in the fixed order used
// throughout the package (also relied on by generateDeadlockMap and
// checkReachability, which don't care about the action letters).
func (c *Context) directionDeltas() [4]int32 {
	return [4]int32{-1, 1, c.Width, -c.Width}
}

func (c *Context) directions() [4]direction {
	return [4]direction{
		{-1, 'l', 'L'},
		{1, 'r', 'R'},
		{c.Width, 'd', 'D'},
		{-c.Width, 'u', 'U'},
	}
}

// expansion is the result of attempting to move the player one step in
// a given direction from a parent state.
type expansion struct {
	player     int32
	crates     bitset.Set
	action     byte
	pushed     bool // true if this move pushed a crate (changed the crates vector)
	ok         bool // false if the move is blocked (wall, blocked push, deadlock)
	outOfSpace bool // true if a push was otherwise legal but the arena had no free crate slot
}

// tryExpand computes the child state reached from parent by moving in
// dir, applying the push rule and the per-push 2x2 deadlock test
// (spec.md §4.6). It performs no hash-set lookup and does not allocate
// a State; callers own deduplication and state allocation.
func (p *Problem) tryExpand(ctx *Context, parent *State, dir direction) expansion {
	newPlayer := parent.Player + dir.delta
	if p.Walls.Get(newPlayer) {
		return expansion{}
	}

	if !parent.Crates.Get(newPlayer) {
		return expansion{
			player: newPlayer,
			crates: parent.Crates,
			action: dir.lower,
			ok:     true,
		}
	}

	next := newPlayer + dir.delta
	if p.Walls.Get(next) || parent.Crates.Get(next) || p.Deadlocks.Get(next) {
		return expansion{}
	}
	if p.checkSingle2x2Deadlock(parent.Crates, next, dir.delta, ctx) {
		return expansion{}
	}

	view, allocated := ctx.newCrateView()
	if !allocated {
		return expansion{outOfSpace: true}
	}
	view.Copy(parent.Crates)
	view.Set(next)
	view.Clear(newPlayer)

	return expansion{
		player: newPlayer,
		crates: view,
		action: dir.upper,
		pushed: true,
		ok:     true,
	}
}

// checkSingle2x2Deadlock examines the two 2x2 squares formed by the
// just-pushed crate at p and each of the two directions orthogonal to
// the push direction d (spec.md §4.6). A square is "closed" when its
// three probe cells are all wall-or-crate; a closed square with at
// least one crate not on a goal (walls contribute 0, and a crate
// sitting on a goal is "safe") is a deadlock.
func (p *Problem) checkSingle2x2Deadlock(crates bitset.Set, pos, d int32, ctx *Context) bool {
	for _, o := range orthogonalsOf(d, ctx) {
		a := pos + d
		b := pos + o
		c := pos + d + o
		if !p.isWallOrCrate(crates, a) || !p.isWallOrCrate(crates, b) || !p.isWallOrCrate(crates, c) {
			continue
		}
		unsafe := p.unsafeAt(crates, a) + p.unsafeAt(crates, b) + p.unsafeAt(crates, c)
		if !p.Goals.Get(pos) {
			// crates is the parent's vector, which does not yet hold the
			// pushed crate at pos; it counts unless it lands on a goal.
			unsafe++
		}
		if unsafe >= 1 {
			return true
		}
	}
	return false
}

func orthogonalsOf(d int32, ctx *Context) [2]int32 {
	if d == 1 || d == -1 {
		return [2]int32{ctx.Width, -ctx.Width}
	}
	return [2]int32{1, -1}
}

func (p *Problem) isWallOrCrate(crates bitset.Set, pos int32) bool {
	return p.Walls.Get(pos) || crates.Get(pos)
}

// unsafeAt reports whether pos holds a crate not sitting on a goal.
// Walls always contribute 0.
func (p *Problem) unsafeAt(crates bitset.Set, pos int32) int32 {
	if p.Walls.Get(pos) {
		return 0
	}
	if crates.Get(pos) && !p.Goals.Get(pos) {
		return 1
	}
	return 0
}
