package dfvsgraph

// AddEdge inserts the directed edge u->v if it is not already present.
// Idempotent: adding an existing edge (including one just created by a
// contraction bypass) is a no-op and pushes no journal entry. Self-loops
// (u==v) are accepted here — the graph store itself does not enforce the
// "no self-loops on live vertices" invariant, the SELF-LOOP reduction rule
// does, by removing the vertex as soon as it observes one.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) {
	g.checkLive(u)
	g.checkLive(v)

	if g.out[u][v] {
		return
	}
	g.out[u][v] = true
	g.in[v][u] = true
	g.push(edgeAddUndo{u: u, v: v})
}

// RemoveEdge deletes the directed edge u->v. Returns ErrEdgeNotFound if no
// such edge exists. Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	g.checkLive(u)
	g.checkLive(v)

	if !g.out[u][v] {
		return ErrEdgeNotFound
	}
	delete(g.out[u], v)
	delete(g.in[v], u)
	g.push(edgeRemoveUndo{u: u, v: v})

	return nil
}

// HasEdge reports whether u->v is currently present. Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.checkLive(u)
	g.checkLive(v)

	return g.out[u][v]
}
