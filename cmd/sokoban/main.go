// Command sokoban runs the spec's test-harness grammar (comments, blank
// lines, level rows and ";BFS(N)"/";A*(h, g, N)" directive lines) against
// the sokoban package, or batch-solves every level file in a directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vxmppz/sokosolve/sokoban"
)

func main() {
	var (
		file     = flag.String("file", "", "harness file to run (level + ;BFS/;A* directives)")
		dir      = flag.String("dir", "", "directory of level files to batch-solve with both drivers")
		capacity = flag.Int("capacity", 1<<16, "arena capacity (max explored states)")
		workers  = flag.Int("workers", 4, "max concurrent directive groups/levels")
		maxIter  = flag.Int64("max-iterations", 100000, "iteration cap used in -dir batch mode")
		replayAt = flag.Int("replay", -1, "in -dir mode, replay the BFS solution for the level at this index")
		verify   = flag.Bool("verify", true, "validate every found solution via sokoban.Validate")
		verbose  = flag.Bool("verbose", false, "enable debug-level logging")
	)
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync() //nolint:errcheck

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)

	var err error
	switch {
	case *file != "":
		err = runHarnessFile(*file, *capacity, *workers, *verify, log, m)
	case *dir != "":
		err = runDirectory(*dir, *capacity, *workers, *maxIter, *replayAt, *verify, log, m)
	default:
		fmt.Fprintln(os.Stderr, "usage: sokoban -file <harness.txt> | -dir <levels/>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if err != nil {
		log.Errorw("run failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.SugaredLogger {
	var l *zap.Logger
	var err error
	if verbose {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		l, err = cfg.Build()
	}
	if err != nil {
		l = zap.NewNop()
	}
	return l.Sugar()
}

// runHarnessFile parses the directive grammar from file and runs each
// group concurrently (bounded by workers), printing a pass/fail report.
func runHarnessFile(path string, capacity, workers int, verify bool, log *zap.SugaredLogger, m *metrics) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	groups, err := parseHarness(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	log.Infow("loaded harness", "file", path, "groups", len(groups))

	results := make([][]outcome, len(groups))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, grp := range groups {
		i, grp := i, grp
		g.Go(func() error {
			outcomes, err := runGroup(grp, capacity, verify, log, m)
			if err != nil {
				return fmt.Errorf("group %d: %w", i, err)
			}
			results[i] = outcomes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failures := 0
	for gi, outcomes := range results {
		for _, o := range outcomes {
			status := "PASS"
			if !o.pass {
				status = "FAIL"
				failures++
			}
			fmt.Printf("group %d: %-4s %s (%s)  -- %s\n", gi, status, strings.TrimPrefix(o.directive.raw, ";"), o.directive.expect, o.detail)
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d directive(s) failed", failures)
	}
	return nil
}

// runDirectory batch-solves every level file in dir with both drivers,
// printing a solved/length/iterations summary table.
func runDirectory(dir string, capacity, workers int, maxIter int64, replayAt int, verify bool, log *zap.SugaredLogger, m *metrics) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".txt" || ext == ".sok" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	rows := make([]levelResult, len(paths))

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			rows[i] = solveLevelFile(p, capacity, maxIter, verify, log)
			return nil
		})
	}
	_ = g.Wait()

	fmt.Printf("%-30s %-8s %-8s %-8s %-8s %-10s %-10s\n", "level", "bfs", "len", "astar", "len", "bfs-iters", "astar-iters")
	for i, r := range rows {
		if r.err != nil {
			fmt.Printf("%-30s error: %v\n", filepath.Base(r.path), r.err)
			continue
		}
		fmt.Printf("%-30s %-8v %-8d %-8v %-8d %-10d %-10d\n",
			filepath.Base(r.path), r.bfs.Solved, len(r.bfs.Actions), r.astar.Solved, len(r.astar.Actions),
			r.bfs.Iterations, r.astar.Iterations)
		if i == replayAt && r.bfs.Solved {
			fmt.Printf("\n-- replay of %s --\n", filepath.Base(r.path))
			if err := replayLevelFile(r.path, capacity, r.bfs.Actions); err != nil {
				log.Warnw("replay failed", "file", r.path, "error", err)
			}
		}
	}
	return nil
}

// levelResult is one row of the -dir batch-mode summary table.
type levelResult struct {
	path  string
	bfs   sokoban.Result
	astar sokoban.Result
	err   error
}

func solveLevelFile(path string, capacity int, maxIter int64, verify bool, log *zap.SugaredLogger) levelResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return levelResult{path: path, err: err}
	}
	rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	width, height, err := levelDimensions(rows)
	if err != nil {
		return levelResult{path: path, err: err}
	}
	ctx, err := sokoban.CreateContext(width, height, capacity)
	if err != nil {
		return levelResult{path: path, err: err}
	}
	problem := sokoban.AllocateProblem(ctx)
	if !problem.Parse(strings.Join(rows, "")) {
		return levelResult{path: path, err: fmt.Errorf("level not compilable")}
	}

	bfsResult := ctx.SolveBFS(problem, maxIter)
	if verify && bfsResult.Solved {
		if err := sokoban.Validate(ctx, problem, bfsResult.Actions); err != nil {
			log.Errorw("bfs solution failed validation", "file", path, "error", err)
		}
	}

	astarResult := ctx.SolveAStar(problem, sokoban.PresetAStar, maxIter)
	if verify && astarResult.Solved {
		if err := sokoban.Validate(ctx, problem, astarResult.Actions); err != nil {
			log.Errorw("astar solution failed validation", "file", path, "error", err)
		}
	}

	return levelResult{path: path, bfs: bfsResult, astar: astarResult}
}

func replayLevelFile(path string, capacity int, actions string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	width, height, err := levelDimensions(rows)
	if err != nil {
		return err
	}
	ctx, err := sokoban.CreateContext(width, height, capacity)
	if err != nil {
		return err
	}
	problem := sokoban.AllocateProblem(ctx)
	if !problem.Parse(strings.Join(rows, "")) {
		return fmt.Errorf("level not compilable")
	}
	return replay(os.Stdout, ctx, problem, actions)
}
