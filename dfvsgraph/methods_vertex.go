package dfvsgraph

import "sort"

// NeighborsOut returns the out-neighbors of v in ascending id order.
// Complexity: O(d log d).
func (g *Graph) NeighborsOut(v int) []int {
	g.checkLive(v)

	return sortedKeys(g.out[v])
}

// NeighborsIn returns the in-neighbors of v in ascending id order.
// Complexity: O(d log d).
func (g *Graph) NeighborsIn(v int) []int {
	g.checkLive(v)

	return sortedKeys(g.in[v])
}

// DegreeOut returns len(neighbors_out(v)). Complexity: O(1).
func (g *Graph) DegreeOut(v int) int {
	g.checkLive(v)

	return len(g.out[v])
}

// DegreeIn returns len(neighbors_in(v)). Complexity: O(1).
func (g *Graph) DegreeIn(v int) int {
	g.checkLive(v)

	return len(g.in[v])
}

// HasSelfLoop reports whether v currently has an edge to itself.
func (g *Graph) HasSelfLoop(v int) bool {
	g.checkLive(v)

	return g.out[v][v]
}

// LiveVertices returns all currently live vertex ids in ascending order.
// Complexity: O(n).
func (g *Graph) LiveVertices() []int {
	out := make([]int, 0, g.n)
	for v := 0; v < g.n; v++ {
		if g.live[v] {
			out = append(out, v)
		}
	}

	return out
}

// RemoveVertex deletes v and every edge incident to it (both directions).
// The removal (including the pre-removal adjacency snapshot needed to
// undo it) is journaled as a single vertexRemoveUndo record.
// Complexity: O(degree_out(v) + degree_in(v)).
func (g *Graph) RemoveVertex(v int) {
	g.checkLive(v)

	savedOut := g.out[v]
	savedIn := g.in[v]

	for w := range savedOut {
		delete(g.in[w], v)
	}
	for w := range savedIn {
		delete(g.out[w], v)
	}

	g.live[v] = false
	g.out[v] = make(map[int]bool)
	g.in[v] = make(map[int]bool)

	g.push(vertexRemoveUndo{v: v, out: savedOut, in: savedIn})
}

// ContractVertex bypasses v: for every (u,v) and (v,w) edge it adds (u,w)
// (collapsing duplicates via set semantics), then removes v. It never
// creates a self-loop on a live vertex; instead, any u for which bypass
// would have produced (u,u) is returned in forced — the caller must add
// each such u to S and remove it from the graph. Sound whenever v is not
// in the solution being built and has no self-loop: the callers are
// reduction rule CORE (v of in- or out-degree 1) and branch-and-bound's
// Branch-OUT (v committed to stay outside S).
// Complexity: O(degree_in(v) * degree_out(v)).
func (g *Graph) ContractVertex(v int) (forced []int) {
	g.checkLive(v)

	ins := sortedKeys(g.in[v])
	outs := sortedKeys(g.out[v])

	seen := make(map[int]bool)
	for _, u := range ins {
		for _, w := range outs {
			if u == w {
				if !seen[u] {
					seen[u] = true
					forced = append(forced, u)
				}

				continue
			}
			g.AddEdge(u, w)
		}
	}
	sort.Ints(forced)

	g.RemoveVertex(v)

	return forced
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
