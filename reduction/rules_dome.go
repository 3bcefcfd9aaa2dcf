package reduction

import "github.com/katalvlaran/dfvs/dfvsgraph"

// applyDome removes dominated edges (the Levy-Low domination rule). Only
// edges without a reverse partner are candidates: an edge u->v that is
// half of a 2-cycle is itself a cycle and is never removed here. Such an
// edge u->v is dominated, and therefore redundant for forming a minimum
// feedback vertex set, if every predecessor of u is also a predecessor of
// v (so any cycle closing through u could instead close through v), or if
// every successor of v is also a successor of u (so any cycle continuing
// through v could instead continue through u). Either condition means
// u->v itself never needs to be the unique edge carrying a cycle, so it
// can be deleted without changing the optimum.
// Complexity: O(V * avg-degree) per call.
func applyDome(g *dfvsgraph.Graph) bool {
	changed := false

	for _, u := range g.LiveVertices() {
		for _, v := range g.NeighborsOut(u) {
			if u == v {
				continue
			}
			if !g.HasEdge(u, v) {
				continue // removed by an earlier iteration of this same pass
			}
			if g.HasEdge(v, u) {
				continue // 2-cycle edge: removing it would break a cycle
			}

			predDominated := isSubsetExcluding(g.NeighborsIn(u), g.NeighborsIn(v), u, v)
			succDominated := isSubsetExcluding(g.NeighborsOut(v), g.NeighborsOut(u), u, v)

			if predDominated || succDominated {
				_ = g.RemoveEdge(u, v)
				changed = true
			}
		}
	}

	return changed
}

// isSubsetExcluding reports whether every element of a, other than excl1
// and excl2, appears in b. a and b are assumed sorted ascending.
func isSubsetExcluding(a, b []int, excl1, excl2 int) bool {
	bSet := make(map[int]bool, len(b))
	for _, x := range b {
		bSet[x] = true
	}

	for _, x := range a {
		if x == excl1 || x == excl2 {
			continue
		}
		if !bSet[x] {
			return false
		}
	}

	return true
}
