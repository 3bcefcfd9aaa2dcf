package reduction

import (
	"sort"

	"github.com/katalvlaran/dfvs/dfvsgraph"
	"go.uber.org/zap"
)

// Level selects which rules Apply runs.
type Level int

const (
	// FastLevel runs only SELF-LOOP, SINK/SOURCE, and CORE: cheap, purely
	// local rules safe to re-run at every branch-and-bound node.
	FastLevel Level = iota
	// FullLevel additionally runs DOME, DOUBLE EDGE, TWIN, and the bounded
	// CROWN rule. Meant to run once at the root of the search (one pass per
	// SCC in branchbound, one over the whole graph in solver), not inside
	// the B&B recursion, where Branch-OUT commits run FastLevel only.
	FullLevel
)

// Config tunes the bounded rules.
type Config struct {
	// CrownBudget caps the number of candidate vertices considered by the
	// CROWN rule per call. Above the budget the rule is skipped entirely
	// for that call rather than run partially (see DESIGN.md Open
	// Question decision).
	CrownBudget int
	Logger      *zap.Logger
}

// DefaultConfig returns the reduction tuning used when the caller does not
// override it.
func DefaultConfig() Config {
	return Config{CrownBudget: 2000, Logger: zap.NewNop()}
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Result reports what a reduction pass discovered.
type Result struct {
	// Forced lists vertices the rules determined must belong to the
	// solution set S, sorted ascending with duplicates removed. The
	// caller is responsible for actually adding them to S; Apply only
	// removes them from g.
	Forced []int
	// Merged records TWIN-rule outcomes: canonical vertex -> the live
	// twin aliases deleted in its favor. Only populated by FullLevel
	// passes. A caller reconstructing a final solution must, for each
	// canonical vertex not present in the solution, add all of its
	// aliases — see DESIGN.md for why this reconstruction step is sound.
	Merged map[int][]int
}

// Apply runs reduction rules to a fixpoint and reports what fired.
// Complexity: bounded by the local rules' O(V+E) worklist fixpoint, plus
// O(V*E) per FullLevel global-rule pass (DOME/TWIN scan the whole live
// vertex set once per firing round).
func Apply(g *dfvsgraph.Graph, level Level, cfg Config) Result {
	log := cfg.logger()
	var forced []int
	merged := map[int][]int{}

	for {
		localForced, localChanged := fixpointLocal(g)
		forced = append(forced, localForced...)

		if level == FastLevel {
			break
		}

		globalChanged := false

		if applyDome(g) {
			globalChanged = true
		}

		if deForced, changed := applyDoubleEdge(g); changed {
			forced = append(forced, deForced...)
			globalChanged = true
		}

		if m, changed := applyTwin(g); changed {
			for canon, aliases := range m {
				merged[canon] = append(merged[canon], aliases...)
			}
			globalChanged = true
		}

		if crownForced, changed := applyCrown(g, cfg.CrownBudget); changed {
			forced = append(forced, crownForced...)
			globalChanged = true
		}

		if !localChanged && !globalChanged {
			break
		}
	}

	forced = dedupSorted(forced)
	log.Debug("reduction pass complete", zap.Int("forced", len(forced)), zap.Int("merged-groups", len(merged)))

	return Result{Forced: forced, Merged: merged}
}

// fixpointLocal drains a dirty-vertex worklist applying SELF-LOOP,
// SINK/SOURCE, and CORE until no live vertex has any of those shapes.
func fixpointLocal(g *dfvsgraph.Graph) (forced []int, changed bool) {
	inQueue := make(map[int]bool)
	var queue []int

	push := func(v int) {
		if g.IsLive(v) && !inQueue[v] {
			inQueue[v] = true
			queue = append(queue, v)
		}
	}

	for _, v := range g.LiveVertices() {
		push(v)
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		inQueue[v] = false

		if !g.IsLive(v) {
			continue
		}

		if g.HasSelfLoop(v) {
			affected := unionSorted(g.NeighborsOut(v), g.NeighborsIn(v))
			forced = append(forced, v)
			g.RemoveVertex(v)
			changed = true
			for _, w := range affected {
				push(w)
			}
			continue
		}

		outDeg, inDeg := g.DegreeOut(v), g.DegreeIn(v)

		if outDeg == 0 || inDeg == 0 {
			affected := unionSorted(g.NeighborsOut(v), g.NeighborsIn(v))
			g.RemoveVertex(v)
			changed = true
			for _, w := range affected {
				push(w)
			}
			continue
		}

		if outDeg == 1 || inDeg == 1 {
			affected := unionSorted(g.NeighborsOut(v), g.NeighborsIn(v))
			bypassForced := g.ContractVertex(v)
			forced = append(forced, bypassForced...)
			changed = true
			for _, u := range bypassForced {
				uAffected := unionSorted(g.NeighborsOut(u), g.NeighborsIn(u))
				g.RemoveVertex(u)
				for _, w := range uAffected {
					push(w)
				}
			}
			for _, w := range affected {
				push(w)
			}
		}
	}

	return forced, changed
}

func unionSorted(a, b []int) []int {
	out := append(append([]int(nil), a...), b...)
	return dedupSorted(out)
}

func dedupSorted(xs []int) []int {
	if len(xs) == 0 {
		return nil
	}
	sort.Ints(xs)
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
