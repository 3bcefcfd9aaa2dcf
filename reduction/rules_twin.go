package reduction

import "github.com/katalvlaran/dfvs/dfvsgraph"

// applyTwin finds pairs of vertices joined by a mutual edge (a 2-cycle)
// whose neighborhoods are otherwise identical, and merges the higher-id
// member into the lower-id one.
//
// If u<->v is a 2-cycle and N_out(u)\{v} == N_out(v)\{u} and
// N_in(u)\{v} == N_in(v)\{u}, u and v are interchangeable for every cycle
// except their own mutual one: any longer cycle routed through one can be
// rerouted through the other. v is therefore deleted from the working
// graph; the 2-cycle it shared with u is discharged by a reconstruction
// rule applied once the search concludes, not by keeping v live:
// whichever of u's eventual S-membership is decided, if u ends up outside
// S the caller must add v (and every other alias merged into u) to S to
// still break the (u,v) cycle, since nothing else in the reduced graph
// does. See Result.Merged and DESIGN.md.
//
// This rule is only meaningful as a one-time kernelization step (FullLevel
// at an SCC root); its Merged bookkeeping is not designed to survive a
// branch-and-bound checkpoint/rollback cycle.
// Complexity: O(V * avg-degree) per call.
func applyTwin(g *dfvsgraph.Graph) (merged map[int][]int, changed bool) {
	merged = make(map[int][]int)

	for _, u := range g.LiveVertices() {
		if !g.IsLive(u) {
			continue
		}
		for _, v := range g.NeighborsOut(u) {
			if v <= u || !g.IsLive(v) {
				continue
			}
			if !g.HasEdge(v, u) {
				continue // need a mutual edge, not just u->v
			}
			if !sameExcluding(g.NeighborsOut(u), g.NeighborsOut(v), u, v) {
				continue
			}
			if !sameExcluding(g.NeighborsIn(u), g.NeighborsIn(v), u, v) {
				continue
			}

			merged[u] = append(merged[u], v)
			g.RemoveVertex(v)
			changed = true
		}
	}

	return merged, changed
}

// sameExcluding reports whether a and b contain the same elements once
// excl1 and excl2 are removed from both. a and b are assumed sorted.
func sameExcluding(a, b []int, excl1, excl2 int) bool {
	filter := func(xs []int) []int {
		out := make([]int, 0, len(xs))
		for _, x := range xs {
			if x != excl1 && x != excl2 {
				out = append(out, x)
			}
		}
		return out
	}

	fa, fb := filter(a), filter(b)
	if len(fa) != len(fb) {
		return false
	}
	for i := range fa {
		if fa[i] != fb[i] {
			return false
		}
	}

	return true
}
