package parallel

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"

	"github.com/katalvlaran/dfvs/branchbound"
	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/katalvlaran/dfvs/heuristic"
)

// Config configures the worker pool.
type Config struct {
	// Workers caps the pool size. Zero or negative means
	// min(len(sccs), runtime.GOMAXPROCS(0)).
	Workers     int
	CrownBudget int
	Logger      *zap.Logger
}

func DefaultConfig() Config {
	return Config{CrownBudget: 2000, Logger: zap.NewNop()}
}

// Result is the union of every subproblem's solution, in original vertex
// ids, plus the worst status across subproblems (any single timeout
// makes the whole result non-optimal).
type Result struct {
	S      []int
	Status branchbound.Status
}

type job struct {
	sccIndex    int
	sub         *dfvsgraph.Graph
	localToOrig []int
	difficulty  int
}

// Solve dispatches every nontrivial SCC in sccs (each a list of original
// vertex ids in g) to a worker pool, solves it exactly with its own
// locally-seeded upper bound, and merges the per-SCC solutions. A shared
// deadline is honored by every worker independently; workers never
// communicate, since SCCs share no cycle. A non-nil error aggregates any
// per-SCC internal invariant panic (see §7's "internal invariant
// violation" taxonomy) without losing the results of the SCCs that
// completed cleanly.
func Solve(g *dfvsgraph.Graph, sccs [][]int, deadline time.Time, cfg Config) (Result, error) {
	jobs := make([]job, 0, len(sccs))
	for i, comp := range sccs {
		if len(comp) == 1 && !g.HasSelfLoop(comp[0]) {
			continue // trivial: a single acyclic vertex needs no search
		}
		sub, localToOrig := g.Subgraph(comp)
		jobs = append(jobs, job{
			sccIndex:    i,
			sub:         sub,
			localToOrig: localToOrig,
			difficulty:  estimateDifficulty(g, comp),
		})
	}

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].difficulty > jobs[j].difficulty })

	if len(jobs) == 0 {
		return Result{Status: branchbound.StatusOptimal}, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	jobCh := make(chan job)
	var collected collector
	var wg sync.WaitGroup
	wg.Add(workers)

	bbCfg := branchbound.Config{CrownBudget: cfg.CrownBudget, Logger: cfg.Logger}
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for j := range jobCh {
				runJob(j, deadline, bbCfg, &collected)
			}
		}()
	}

	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	wg.Wait()

	sort.Ints(collected.s)

	return Result{S: collected.s, Status: collected.status}, collected.errs.ErrorOrNil()
}

// runJob solves one SCC's subproblem and merges its result into
// collected, recovering from any internal-invariant panic so one
// misbehaving subproblem cannot take down the others.
func runJob(j job, deadline time.Time, bbCfg branchbound.Config, collected *collector) {
	defer func() {
		if r := recover(); r != nil {
			collected.addError(fmt.Errorf("scc %d: %w: %v", j.sccIndex, branchbound.ErrInternalInvariant, r))
		}
	}()

	ub := heuristic.LocalSearch(j.sub, heuristic.ConstructGreedy(j.sub))
	res := branchbound.SolveSCC(j.sub, ub, deadline, bbCfg)

	orig := make([]int, len(res.S))
	for k, v := range res.S {
		orig[k] = j.localToOrig[v]
	}

	collected.add(orig, res.Status)
}

// collector is the mutex-protected aggregation point every worker writes
// through; per §5 it is the only state actually shared between workers
// besides the read-only original graph and the deadline.
type collector struct {
	mu     sync.Mutex
	s      []int
	status branchbound.Status
	errs   *multierror.Error
}

func (c *collector) add(s []int, status branchbound.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s = append(c.s, s...)
	if status == branchbound.StatusTimeout {
		c.status = branchbound.StatusTimeout
	}
}

func (c *collector) addError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = multierror.Append(c.errs, err)
}

func estimateDifficulty(g *dfvsgraph.Graph, comp []int) int {
	edges := 0
	for _, v := range comp {
		edges += g.DegreeOut(v)
	}

	return len(comp) * edges
}
