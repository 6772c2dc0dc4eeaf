package sokoban

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 5 (spec.md §8): A*(1,1,10000) on the same solvable level as
// BFS finds the same optimal 12-move solution.
func TestAStarFindsOptimalSolution(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	require.True(t, compilable)
	require.True(t, problem.PotentiallySolvable)

	result := ctx.SolveAStar(problem, PresetAStar, 10000)
	require.True(t, result.Solved)
	require.Len(t, result.Actions, 12)
	require.NoError(t, Validate(ctx, problem, result.Actions))
}

// Scenario 6: A*(1,0,10000) (greedy best-first) on a level with interior
// walls and two crates already on goals still finds some solution.
func TestAStarGreedySolvesLevel(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, ".Wg."+"gW.."+".WWW"+"A.10")
	require.True(t, compilable)
	require.True(t, problem.PotentiallySolvable)

	result := ctx.SolveAStar(problem, PresetGreedy, 10000)
	require.True(t, result.Solved)
	require.NotEmpty(t, result.Actions)
	require.NoError(t, Validate(ctx, problem, result.Actions))
}

// Uniform-cost weighting (h=0, g=1) degenerates to Dijkstra and must
// still find the optimal path length, matching BFS.
func TestAStarUniformMatchesBFSLength(t *testing.T) {
	ctx, problem, _ := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	bfsResult := ctx.SolveBFS(problem, 10000)
	astarResult := ctx.SolveAStar(problem, PresetUniform, 10000)
	require.True(t, bfsResult.Solved)
	require.True(t, astarResult.Solved)
	require.Len(t, astarResult.Actions, len(bfsResult.Actions))
}

func TestAStarNotCompilableRefusesToRun(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, "...."+"..+."+".11."+"....")
	require.False(t, compilable)
	result := ctx.SolveAStar(problem, PresetAStar, 10000)
	require.False(t, result.Solved)
	require.False(t, result.LimitExceeded)
}

func TestAStarStaticallyUnsolvableRefusesToRun(t *testing.T) {
	ctx, problem, compilable := parseLevel(t, 4, 4, 10000, ".10."+"..A."+"0110"+"0110")
	require.True(t, compilable)
	require.False(t, problem.PotentiallySolvable)

	result := ctx.SolveAStar(problem, PresetAStar, 10000)
	require.False(t, result.Solved)
	require.Equal(t, int64(0), result.Iterations)
}

func TestAStarMaxIterationsOne(t *testing.T) {
	ctx, problem, _ := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	result := ctx.SolveAStar(problem, PresetAStar, 1)
	require.False(t, result.Solved)
	require.True(t, result.LimitExceeded)
}

func TestAStarCapacityExhausted(t *testing.T) {
	ctx, err := CreateContext(4, 4, 1)
	require.NoError(t, err)
	problem := AllocateProblem(ctx)
	compilable := problem.Parse("..0." + "..+." + ".11." + "....")
	require.True(t, compilable)

	result := ctx.SolveAStar(problem, PresetAStar, 0)
	require.False(t, result.Solved)
	require.True(t, result.LimitExceeded)
}

func TestAStarDeterministic(t *testing.T) {
	ctx, problem, _ := parseLevel(t, 4, 4, 10000, "..0."+"..+."+".11."+"....")
	first := ctx.SolveAStar(problem, PresetAStar, 10000)
	second := ctx.SolveAStar(problem, PresetAStar, 10000)
	require.Equal(t, first.Solved, second.Solved)
	require.Equal(t, first.Actions, second.Actions)
}
