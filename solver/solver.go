package solver

import (
	"sort"
	"time"

	"github.com/katalvlaran/dfvs/branchbound"
	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/katalvlaran/dfvs/heuristic"
	"github.com/katalvlaran/dfvs/parallel"
	"github.com/katalvlaran/dfvs/reduction"
	"github.com/katalvlaran/dfvs/scc"
)

// SolveExact computes a minimum feedback vertex set for g. It consumes g:
// unlike branchbound.SolveSCC or the heuristic package, this is a
// top-level, solve-once entry point, so it skips the checkpoint/rollback
// discipline those reusable building blocks need. deadline is honored
// independently by every SCC subproblem; a zero deadline means no limit.
func SolveExact(g *dfvsgraph.Graph, deadline time.Time, opts ...Option) ([]int, branchbound.Status, error) {
	cfg := newConfig(opts)
	rcfg := reduction.Config{CrownBudget: cfg.CrownBudget, Logger: cfg.Logger}

	root := reduction.Apply(g, reduction.FullLevel, rcfg)
	s := append([]int(nil), root.Forced...)

	sccs := scc.Decompose(g)
	pres, err := parallel.Solve(g, sccs, deadline, parallel.Config{
		Workers:     cfg.Workers,
		CrownBudget: cfg.CrownBudget,
		Logger:      cfg.Logger,
	})
	s = mergeSorted(s, pres.S)
	s = reconcileMerged(s, root.Merged)

	return s, pres.Status, err
}

// SolveHeuristic computes a feasible (not necessarily minimum) feedback
// vertex set for g under deadline, via greedy construction plus local
// search over the root-reduced kernel. It consumes g, same as SolveExact.
func SolveHeuristic(g *dfvsgraph.Graph, deadline time.Time, opts ...Option) []int {
	cfg := newConfig(opts)
	rcfg := reduction.Config{CrownBudget: cfg.CrownBudget, Logger: cfg.Logger}

	root := reduction.Apply(g, reduction.FullLevel, rcfg)
	s := append([]int(nil), root.Forced...)

	if live := g.LiveVertices(); len(live) > 0 {
		greedy := heuristic.ConstructGreedy(g)
		improved := heuristic.LocalSearch(g, greedy)
		s = mergeSorted(s, improved)
	}
	s = reconcileMerged(s, root.Merged)

	return s
}

// reconcileMerged expands s against merged, which may record a chain of
// TWIN merges spanning several reduction rounds (round one merges 5 into
// 2, a later round then merges 2 itself into 1). applyTwin's contract is
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
func reconcileMerged(s []int, merged map[int][]int) []int {
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
	sort.Ints(out)

	return out
}

// mergeSorted merges two ascending, duplicate-free slices into one.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
