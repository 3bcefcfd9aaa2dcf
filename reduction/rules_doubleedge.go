package reduction

import "github.com/katalvlaran/dfvs/dfvsgraph"

// applyDoubleEdge forces a "PI-vertex" into S: a live vertex v every one
// of whose incident edges has an anti-parallel partner (so v participates
// only in 2-cycles, never a longer one) and which has at least two such
// neighbors. Each neighbor w closes a 2-cycle (v,w) that shares no vertex
// with any other neighbor's 2-cycle except v itself, so any feasible
// solution must take either v or one vertex from every single one of
// those k≥2 disjoint cycles. Taking v alone discharges all k at cost 1,
// strictly better than any alternative costing ≥k, so an optimal solution
// always prefers v: v can be swapped into any solution that omits it
// without increasing its size, making v forced.
// Complexity: O(V * avg-degree) per call.
func applyDoubleEdge(g *dfvsgraph.Graph) (forced []int, changed bool) {
	for _, v := range g.LiveVertices() {
		if !onlyTwoCycles(g, v) {
			continue
		}
		if g.DegreeOut(v) < 2 {
			continue // need k>=2 disjoint 2-cycles for v to strictly dominate
		}

		forced = append(forced, v)
		g.RemoveVertex(v)
		changed = true
	}

	return forced, changed
}

// onlyTwoCycles reports whether every edge incident to v is part of a
// mutual pair: N_out(v) and N_in(v) are identical sets, so v has no
// "one-way" neighbor that could carry a longer cycle through it.
func onlyTwoCycles(g *dfvsgraph.Graph, v int) bool {
	out := g.NeighborsOut(v)
	in := g.NeighborsIn(v)
	if len(out) != len(in) {
		return false
	}
	for i := range out {
		if out[i] != in[i] {
			return false
		}
		if !g.HasEdge(out[i], v) {
			return false
		}
	}

	return true
}
