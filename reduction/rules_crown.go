package reduction

import "github.com/katalvlaran/dfvs/dfvsgraph"

// applyCrown looks for a bounded crown decomposition over the "conflict
// graph" of mutual (2-cycle) edges: an independent set I of candidate
// vertices whose combined 2-cycle neighborhood H can be perfectly matched
// against I. When such a matching exists, the crown lemma says every
// vertex of H must belong to an optimal solution and every vertex of I
// can be discarded outright — so H is forced into S and I ∪ H is removed.
//
// Bounded and conservative by design (see DESIGN.md Open Question
// decision): only vertices with small total degree are considered as
// candidates, capped at budget of them per call, and the rule requires H
// to be fully saturated by the matching (a partial crown is not acted on,
// since an incomplete decomposition is not provably safe). This finds a
// strict subset of the crowns a full iterative shrinking search would,
// but never fires unsoundly, and above budget candidates it is skipped
// for that call entirely rather than run on a truncated candidate set.
// Complexity: O(budget * E) for the matching search.
func applyCrown(g *dfvsgraph.Graph, budget int) (forced []int, changed bool) {
	if budget <= 0 {
		return nil, false
	}

	const maxCandidateDegree = 3

	var candidates []int
	for _, v := range g.LiveVertices() {
		if g.DegreeOut(v)+g.DegreeIn(v) <= maxCandidateDegree {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) > budget {
		return nil, false
	}

	// Build the independent set I greedily: a candidate joins I only if it
	// shares no mutual edge with a vertex already in I.
	inI := make(map[int]bool)
	var independent []int
	for _, v := range candidates {
		conflicts := false
		for _, w := range independent {
			if g.HasEdge(v, w) && g.HasEdge(w, v) {
				conflicts = true
				break
			}
		}
		if !conflicts {
			inI[v] = true
			independent = append(independent, v)
		}
	}
	if len(independent) == 0 {
		return nil, false
	}

	// Head H: every vertex mutually (2-cycle) adjacent to some member of I.
	headSet := make(map[int]bool)
	adj := make(map[int][]int) // I-member -> its H neighbors
	for _, v := range independent {
		for _, w := range g.NeighborsOut(v) {
			if inI[w] || !g.HasEdge(w, v) {
				continue
			}
			headSet[w] = true
			adj[v] = append(adj[v], w)
		}
	}
	if len(headSet) == 0 {
		return nil, false
	}
	var head []int
	for h := range headSet {
		head = append(head, h)
	}

	matchOf := kuhnMaximumMatching(independent, head, adj)
	if len(matchOf) != len(head) {
		return nil, false // H not fully saturated: not a valid crown, skip
	}

	forced = append(forced, head...)
	for _, h := range head {
		g.RemoveVertex(h)
	}
	for _, v := range independent {
		if g.IsLive(v) {
			g.RemoveVertex(v)
		}
	}

	return dedupSorted(forced), true
}

// kuhnMaximumMatching finds a maximum bipartite matching between left and
// right using repeated augmenting-path search (Kuhn's algorithm). adj maps
// a left vertex to its right-side neighbors. Returns the set of right
// vertices matched.
func kuhnMaximumMatching(left, right []int, adj map[int][]int) map[int]bool {
	matchLeftOf := make(map[int]int) // right vertex -> matched left vertex

	var tryAugment func(v int, visited map[int]bool) bool
	tryAugment = func(v int, visited map[int]bool) bool {
		for _, r := range adj[v] {
			if visited[r] {
				continue
			}
			visited[r] = true
			if owner, taken := matchLeftOf[r]; !taken || tryAugment(owner, visited) {
				matchLeftOf[r] = v
				return true
			}
		}
		return false
	}

	for _, v := range left {
		tryAugment(v, make(map[int]bool))
	}

	matched := make(map[int]bool, len(matchLeftOf))
	for r := range matchLeftOf {
		matched[r] = true
	}
	_ = right

	return matched
}
