package sokoban

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1 (spec.md §8): not compilable -> search is never even
// meaningful, but SolveBFS must still behave per PotentiallySolvable.
func TestBFSNotCompilableRefusesToRun(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, "...."+"..+."+".11."+"....")
	require.False(t, compilable)
	result := ctx.SolveBFS(problem, 10000)
	require.False(t, result.Solved)
	require.False(t, result.LimitExceeded)
}

// Scenario 2: compilable but unsolvable; the pre-analysis finds the
// crates on deadlock cells, so BFS returns unsolved without a limit
// being hit.
func TestBFSExhaustsOnUnsolvableLevel(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".1.1"+".WW.")
	require.True(t, compilable)
	result := ctx.SolveBFS(problem, 10000)
	require.False(t, result.Solved)
	require.False(t, result.LimitExceeded)
}

// Scenario 3: statically unsolvable -> the driver refuses to run.
func TestBFSStaticallyUnsolvableRefusesToRun(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, ".10."+"..A."+"0110"+"0110")
	require.True(t, compilable)
	require.False(t, problem.PotentiallySolvable)

	result := ctx.SolveBFS(problem, 10000)
	require.False(t, result.Solved)
	require.False(t, result.LimitExceeded)
	require.Equal(t, int64(0), result.Iterations)
}

// Scenario 4: BFS finds a 12-move optimal solution.
func TestBFSFindsOptimalSolution(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	require.True(t, compilable)
	require.True(t, problem.PotentiallySolvable)

	result := ctx.SolveBFS(problem, 10000)
	require.True(t, result.Solved)
	require.Len(t, result.Actions, 12)
	require.NoError(t, Validate(ctx, problem, result.Actions))
}

// spec.md §8 boundary: max_iterations = 1 on a solvable level returns
// limit_exceeded unless the root already generates the goal child.
func TestBFSMaxIterationsOne(t *testing.T) {
	ctx, problem, _ := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	result := ctx.SolveBFS(problem, 1)
	require.False(t, result.Solved)
	require.True(t, result.LimitExceeded)
}

// spec.md §8 boundary: a capacity too small to hold the search reports
// limit_exceeded rather than growing the arena.
func TestBFSCapacityExhausted(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1)
	require.NoError(t, err)
	problem := AllocateProblem(ctx)
	compilable := problem.Parse("..0." + "..+." + ".11." + "....")
	require.True(t, compilable)

	result := ctx.SolveBFS(problem, 0)
	require.False(t, result.Solved)
	require.True(t, result.LimitExceeded)
}

// CreateContext rejects capacity < 1 outright (SPEC_FULL.md §14's
// resolution of the capacity == 0 open question).
func TestCreateContextRejectsZeroCapacity(t *testing.T) {
	_, err := CreateContext(4, 4, 0)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestCreateContextRejectsBadDimensions(t *testing.T) {
	_, err := CreateContext(0, 4, 10)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

// Re-running a search on the same context/problem is deterministic.
func TestBFSDeterministic(t *testing.T) {
	ctx, problem, _ := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	first := ctx.SolveBFS(problem, 10000)
	second := ctx.SolveBFS(problem, 10000)
	require.Equal(t, first.Solved, second.Solved)
	require.Equal(t, first.Actions, second.Actions)
	require.Equal(t, first.Iterations, second.Iterations)
}
