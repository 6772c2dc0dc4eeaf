package main

import (
	"fmt"
	"io"

	"github.com/vxmppz/sokosolve/internal/bitset"
	"github.com/vxmppz/sokosolve/sokoban"
)

// replay re-enacts a found action string move by move, printing the
// resulting grid after each step. It is the direct descendant of the
// teacher's interactive Game.Play()/Game.Display() loop, adapted from a
// human-driven REPL into a deterministic solution walkthrough.
func replay(w io.Writer, ctx *sokoban.Context, problem *sokoban.Problem, actions string) error {
	player := problem.PlayerInitial
	crates := bitset.New(int(ctx.Area))
	crates.Copy(problem.CratesInitial)

	fmt.Fprintln(w, "Initial position:")
	printGrid(w, ctx, problem, player, crates)

	for i := 0; i < len(actions); i++ {
		a := actions[i]
		d, ok := deltaForDisplayAction(ctx, a)
		if !ok {
			return fmt.Errorf("replay: unrecognized action byte %q at step %d", a, i)
		}
		newPlayer := player + d
		if isUpperDisplayAction(a) {
			next := newPlayer + d
			crates.Clear(newPlayer)
			crates.Set(next)
		}
		player = newPlayer

		fmt.Fprintf(w, "Step %d (%c):\n", i+1, a)
		printGrid(w, ctx, problem, player, crates)
	}
	return nil
}

func printGrid(w io.Writer, ctx *sokoban.Context, problem *sokoban.Problem, player int32, crates bitset.Set) {
	for y := int32(1); y < ctx.Height-1; y++ {
		for x := int32(1); x < ctx.Width-1; x++ {
			pos := ctx.Pos(x, y)
			fmt.Fprintf(w, "%c ", displayTile(problem, player, crates, pos))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

func displayTile(problem *sokoban.Problem, player int32, crates bitset.Set, pos int32) byte {
	isGoal := problem.Goals.Get(pos)
	isCrate := crates.Get(pos)
	isPlayer := pos == player
	isWall := problem.Walls.Get(pos)

	switch {
	case isPlayer && isGoal:
		return '+'
	case isPlayer:
		return 'A'
	case isCrate && isGoal:
		return 'G'
	case isCrate:
		return '1'
	case isWall:
		return 'W'
	case isGoal:
		return '0'
	default:
		return '.'
	}
}

func isUpperDisplayAction(a byte) bool { return a >= 'A' && a <= 'Z' }

func deltaForDisplayAction(ctx *sokoban.Context, a byte) (int32, bool) {
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
