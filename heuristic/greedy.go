package heuristic

import (
	"sort"

	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/katalvlaran/dfvs/reduction"
)

// ConstructGreedy builds a feasible feedback vertex set for g by
// repeatedly running FastLevel reduction to a fixpoint, then removing the
// single highest-scoring remaining vertex, until no live vertex remains.
// A vertex's score is in_degree*out_degree minus twice its 2-cycle
// incidence count: high-degree vertices that sit on many potential cycles
// are preferred, and vertices already anchoring cheap 2-cycles (which the
// reduction engine can often resolve more surgically on its own) are
// deprioritized. Ties favor the lowest vertex id, matching the
// ascending-id tie-break branch-and-bound itself uses.
//
// g is mutated and then restored: all work happens under a single
// checkpoint, rolled back before returning.
// Complexity: O(V) iterations, each O(V + E) for the reduction fixpoint
// plus O(V + E) for scoring — O(V*(V+E)) worst case.
func ConstructGreedy(g *dfvsgraph.Graph) []int {
	h := g.Checkpoint()
	defer g.Rollback(h)

	var s []int

	for {
		res := reduction.Apply(g, reduction.FastLevel, reduction.DefaultConfig())
		s = append(s, res.Forced...)

		live := g.LiveVertices()
		if len(live) == 0 {
			break
		}

		best, bestScore := -1, -1
		for _, v := range live {
			outDeg, inDeg := g.DegreeOut(v), g.DegreeIn(v)
			twoCycles := 0
			for _, w := range g.NeighborsOut(v) {
				if g.HasEdge(w, v) {
					twoCycles++
				}
			}
			score := inDeg*outDeg - 2*twoCycles
			if score > bestScore {
				bestScore, best = score, v
			}
		}

		s = append(s, best)
		g.RemoveVertex(best)
	}

	sort.Ints(s)
	return s
}
