package sokoban

import "testing"

// parseLevel builds a context and problem for a rawW x rawH interior
// grid and parses level (rows concatenated left-to-right,
// top-to-bottom; '|' row separators used in spec.md's scenario table
// are not part of the tile alphabet and are skipped harmlessly).
func parseLevel(t *testing.T, rawW, rawH, capacity int, level string) (*Context, *Problem, bool) {
	t.Helper()
	ctx, err := CreateContext(rawW, rawH, capacity)
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	problem := AllocateProblem(ctx)
	compilable := problem.Parse(level)
	return ctx, problem, compilable
}
