package dfvsgraph

// Subgraph builds a fresh, independent Graph over exactly the given live
// vertices, renumbered to a dense range [0,len(vertices)). It is used to
// hand each SCC its own worker-local Graph (component G) and carries no
// journal history from g — the subgraph starts with an empty journal.
//
// vertices must be distinct and live in g; order is preserved as the local
// numbering (vertices[i] becomes local id i).
//
// Returns the new Graph, plus localToOrig (local id -> g's vertex id) for
// translating a subproblem's solution back into g's id space.
// Complexity: O(V + E) over the induced subgraph.
func (g *Graph) Subgraph(vertices []int) (sub *Graph, localToOrig []int) {
	origToLocal := make(map[int]int, len(vertices))
	for i, v := range vertices {
		g.checkLive(v)
		origToLocal[v] = i
	}

	sub = NewGraph(len(vertices))
	for i, v := range vertices {
		for w := range g.out[v] {
			if j, ok := origToLocal[w]; ok {
				sub.AddEdge(i, j)
			}
		}
	}
	// AddEdge above journals every insertion; a subgraph is a fresh start,
	// not a continuation of g's history, so clear it.
	sub.journal = sub.journal[:0]

	localToOrig = append([]int(nil), vertices...)

	return sub, localToOrig
}
