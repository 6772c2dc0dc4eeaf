package main

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vxmppz/sokosolve/sokoban"
)

// outcome is the result of checking a directive's actual result against
// its expectation.
type outcome struct {
	directive directive
	pass      bool
	detail    string
}

// runGroup parses one level and runs each of its directives against a
// fresh Context/Problem pair, sized by capacity (spec.md §6: the harness
// owns level tokenizing, the core owns everything after Problem.Parse).
func runGroup(g group, capacity int, verify bool, log *zap.SugaredLogger, m *metrics) ([]outcome, error) {
	width, height, err := levelDimensions(g.rows)
	if err != nil {
		return nil, err
	}
	ctx, err := sokoban.CreateContext(width, height, capacity)
	if err != nil {
		return nil, fmt.Errorf("create context: %w", err)
	}
	problem := sokoban.AllocateProblem(ctx)
	compilable := problem.Parse(g.level)

	results := make([]outcome, len(g.directives))
	for i, d := range g.directives {
		results[i] = runDirective(ctx, problem, compilable, d, verify, log, m)
	}
	return results, nil
}

func runDirective(ctx *sokoban.Context, problem *sokoban.Problem, compilable bool, d directive, verify bool, log *zap.SugaredLogger, m *metrics) outcome {
	driverName := "bfs"
	if d.kind == directiveAStar {
		driverName = "astar"
	}

	if d.expect.kind == expectCompilableOnly {
		pass := compilable
		return outcome{directive: d, pass: pass, detail: fmt.Sprintf("compilable=%v", compilable)}
	}
	if !compilable {
		pass := d.expect.kind == expectUnsolvable
		return outcome{directive: d, pass: pass, detail: "not compilable"}
	}

	start := time.Now()
	var result sokoban.Result
	switch d.kind {
	case directiveBFS:
		result = ctx.SolveBFS(problem, d.maxIterations)
	case directiveAStar:
		weights := sokoban.Weights{HFactor: d.hFactor, GFactor: d.gFactor}
		result = ctx.SolveAStar(problem, weights, d.maxIterations)
	}
	elapsed := time.Since(start).Seconds()

	outcomeLabel := "unsolved"
	if result.Solved {
		outcomeLabel = "solved"
	} else if result.LimitExceeded {
		outcomeLabel = "limit_exceeded"
	}
	if m != nil {
		m.observe(driverName, outcomeLabel, elapsed, result.Iterations)
	}
	log.Debugw("ran directive", "driver", driverName, "outcome", outcomeLabel,
		"iterations", result.Iterations, "elapsed", elapsed)

	if verify && result.Solved {
		if err := sokoban.Validate(ctx, problem, result.Actions); err != nil {
			log.Errorw("solution failed validation", "driver", driverName, "error", err)
		}
	}

	return checkExpectation(d, result)
}

func checkExpectation(d directive, result sokoban.Result) outcome {
	switch d.expect.kind {
	case expectUnsolvable:
		pass := !result.Solved
		return outcome{directive: d, pass: pass, detail: fmt.Sprintf("solved=%v limit_exceeded=%v", result.Solved, result.LimitExceeded)}
	case expectSolvedLength:
		pass := result.Solved && len(result.Actions) == d.expect.length
		return outcome{directive: d, pass: pass, detail: fmt.Sprintf("solved=%v length=%d", result.Solved, len(result.Actions))}
	case expectSolvedAny:
		pass := result.Solved
		return outcome{directive: d, pass: pass, detail: fmt.Sprintf("solved=%v length=%d", result.Solved, len(result.Actions))}
	default:
		return outcome{directive: d, pass: false, detail: "unreachable expectation kind"}
	}
}

// levelDimensions derives the raw interior width/height a level's source
// lines imply: every row must be the same length, and that length
// becomes the width fed to CreateContext.
func levelDimensions(rows []string) (width, height int, err error) {
	if len(rows) == 0 {
		return 0, 0, fmt.Errorf("level has no rows")
	}
	width = len(rows[0])
	for _, r := range rows {
		if len(r) != width {
			return 0, 0, fmt.Errorf("level rows have inconsistent width: %d vs %d", len(r), width)
		}
	}
	return width, len(rows), nil
}
