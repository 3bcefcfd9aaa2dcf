// Command dfvs-solve reads a METIS-derived directed graph, computes a
// feedback vertex set, and writes it out in the same line-oriented
// format. It is the CLI collaborator the core packages are deliberately
// kept independent of: flag parsing, exit-code translation, and SIGTERM
// handling for the heuristic path's time budget all live here, nowhere
// else in the module.
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/dfvs/branchbound"
	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/katalvlaran/dfvs/heuristic"
	"github.com/katalvlaran/dfvs/metisio"
	"github.com/katalvlaran/dfvs/reduction"
	"github.com/katalvlaran/dfvs/solver"
)

// Exit codes, per §6's "CLI collaborator" contract.
const (
	exitOptimalOrDone     = 0
	exitFeasibleTimeout   = 1
	exitInvalidInput      = 2
	exitInternalInvariant = 3
)

const (
	defaultExactDeadline     = 600 * time.Second
	defaultHeuristicDeadline = 10 * time.Minute
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dfvs-solve", flag.ContinueOnError)
	input := fs.String("input", "-", "input graph path, or - for stdin")
	output := fs.String("output", "-", "output solution path, or - for stdout")
	mode := fs.String("mode", "exact", "solve mode: exact or heuristic")
	deadline := fs.Duration("deadline", 0, "wall-clock budget; 0 selects the mode default (600s exact, 10m heuristic)")
	crownBudget := fs.Int("crown-budget", 2000, "CROWN rule candidate-count ceiling")
	workers := fs.Int("workers", -1, "worker pool size for the exact solver; -1 defers to DFVS_THREADS or auto-sizing; 1 gives deterministic single-thread replay")
	verbose := fs.Bool("verbose", false, "enable debug-level logging")

	if err := fs.Parse(args); err != nil {
		return exitInvalidInput
	}

	logger := newLogger(*verbose)
	defer logger.Sync() //nolint:errcheck

	in, closeIn, err := openInput(*input)
	if err != nil {
		logger.Error("dfvs-solve: cannot open input", zap.Error(err))
		return exitInvalidInput
	}
	defer closeIn()

	g, err := metisio.ReadGraph(in)
	if err != nil {
		logger.Error("dfvs-solve: malformed input", zap.Error(err))
		return exitInvalidInput
	}

	workerCount := resolveWorkers(*workers)

	var code int
	switch *mode {
	case "exact":
		code = runExact(g, resolveDeadline(*deadline, defaultExactDeadline), *crownBudget, workerCount, *output, logger)
	case "heuristic":
		code = runHeuristic(g, resolveDeadline(*deadline, defaultHeuristicDeadline), *crownBudget, *output, logger)
	default:
		logger.Error("dfvs-solve: unknown mode", zap.String("mode", *mode))
		return exitInvalidInput
	}

	return code
}

func runExact(g *dfvsgraph.Graph, deadline time.Time, crownBudget, workers int, output string, logger *zap.Logger) int {
	s, status, err := solver.SolveExact(g, deadline,
		solver.WithCrownBudget(crownBudget),
		solver.WithWorkerCount(workers),
		solver.WithLogger(logger),
	)
	if err != nil {
		logger.Error("dfvs-solve: internal invariant violation", zap.Error(err))
		return exitInternalInvariant
	}

	if writeErr := writeSolution(output, s); writeErr != nil {
		logger.Error("dfvs-solve: cannot write output", zap.Error(writeErr))
		return exitInternalInvariant
	}

	if status == branchbound.StatusTimeout {
		return exitFeasibleTimeout
	}

	return exitOptimalOrDone
}

// runHeuristic owns the SIGTERM handoff §1 requires: it keeps the fast
// greedy construction as a safety-net result available the instant it
// finishes, then races local-search improvement against the deadline and
// an incoming SIGTERM/SIGINT, writing whichever result is best at the
// moment it has to stop.
func runHeuristic(g *dfvsgraph.Graph, deadline time.Time, crownBudget int, output string, logger *zap.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	rcfg := reduction.Config{CrownBudget: crownBudget, Logger: logger}
	root := reduction.Apply(g, reduction.FullLevel, rcfg)
	forced := append([]int(nil), root.Forced...)

	greedy := heuristic.ConstructGreedy(g)
	fallback := reconcile(mergeSorted(forced, greedy), root.Merged)

	improvedCh := make(chan []int, 1)
	go func() {
		improved := heuristic.LocalSearch(g, greedy)
		improvedCh <- reconcile(mergeSorted(forced, improved), root.Merged)
	}()

	var (
		best        = fallback
		interrupted bool
	)

	var timer *time.Timer
	var timerCh <-chan time.Time
	if !deadline.IsZero() {
		timer = time.NewTimer(time.Until(deadline))
		timerCh = timer.C
		defer timer.Stop()
	}

	select {
	case best = <-improvedCh:
	case <-ctx.Done():
		logger.Warn("dfvs-solve: signal received, writing current best-effort solution")
		interrupted = true
	case <-timerCh:
		logger.Warn("dfvs-solve: heuristic deadline reached, writing current best-effort solution")
		interrupted = true
	}

	if err := writeSolution(output, best); err != nil {
		logger.Error("dfvs-solve: cannot write output", zap.Error(err))
		return exitInternalInvariant
	}

	if interrupted {
		return exitFeasibleTimeout
	}

	return exitOptimalOrDone
}

func resolveDeadline(flagValue, fallback time.Duration) time.Time {
	d := flagValue
	if d <= 0 {
		d = fallback
	}

	return time.Now().Add(d)
}

// resolveWorkers applies the flag/env precedence described in §6
// "Environment": an explicit -workers flag wins, then DFVS_THREADS, then
// auto-sizing (0, meaning min(SCC count, runtime.GOMAXPROCS(0))).
func resolveWorkers(flagValue int) int {
	if flagValue >= 0 {
		return flagValue
	}
	if raw, ok := os.LookupEnv("DFVS_THREADS"); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}

	return 0
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func openInput(path string) (io.Reader, func() error, error) {
	if path == "-" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}

func writeSolution(path string, s []int) error {
	if path == "-" {
		return metisio.WriteSolution(os.Stdout, s)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := metisio.WriteSolution(f, s); err != nil {
		return err
	}

	return f.Close()
}

// reconcile expands s against merged, which may record a chain of TWIN
// merges spanning several reduction rounds (round one merges 5 into 2, a
// later round then merges 2 itself into 1). applyTwin's contract is
// per-level: "if u ends up outside S, add v" — so whether a node counts
// as effectively satisfied depends on its parent in the chain, not on
// whether it is literally a member of s (an alias is never literally a
// member; it is only ever satisfied by its parent's rule firing). This
// walks every root (a key that is never itself an alias) top-down,
// propagating each node's effective membership to its own aliases: a
// node effectively in S needs none of its aliases added, and marks them
// effectively absent for their own sub-chains; a node effectively absent
// forces every one of its aliases in, and marks them effectively present
// for theirs. Traversal order never affects the result, since each
// node's outcome depends only on its parent, not on sibling or
// processing order — unlike a single flat pass over the map.
func reconcile(s []int, merged map[int][]int) []int {
	if len(merged) == 0 {
		return s
	}

	in := make(map[int]bool, len(s))
	for _, v := range s {
		in[v] = true
	}

	isAlias := make(map[int]bool, len(merged))
	for _, aliases := range merged {
		for _, a := range aliases {
			isAlias[a] = true
		}
	}

	type frame struct {
		v        int
		inEffect bool
	}

	var roots []int
	for canon := range merged {
		if !isAlias[canon] {
			roots = append(roots, canon)
		}
	}
	sort.Ints(roots)

	queue := make([]frame, 0, len(roots))
	for _, r := range roots {
		queue = append(queue, frame{v: r, inEffect: in[r]})
	}

	out := append([]int(nil), s...)
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]

		children, ok := merged[f.v]
		if !ok {
			continue
		}
		for _, c := range children {
			if !f.inEffect {
				if !in[c] {
					in[c] = true
					out = append(out, c)
				}
				queue = append(queue, frame{v: c, inEffect: true})
			} else {
				queue = append(queue, frame{v: c, inEffect: false})
			}
		}
	}

	return sortedUnique(out)
}

func mergeSorted(a, b []int) []int {
	out := append([]int(nil), a...)
	out = append(out, b...)

	return sortedUnique(out)
}

func sortedUnique(s []int) []int {
	sort.Ints(s)

	if len(s) == 0 {
		return s
	}

	out := s[:1]
	for _, v := range s[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}

	return out
}
