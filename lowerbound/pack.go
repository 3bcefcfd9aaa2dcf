package lowerbound

import "github.com/katalvlaran/dfvs/dfvsgraph"

// Pack greedily packs vertex-disjoint directed cycles of length at most
// maxDepth and returns how many it found: any feasible solution must
// include at least one vertex from each, and the cycles share no vertex,
// so the count is a valid lower bound on the minimum feedback vertex set
// size.
// Complexity: O(k * V * (V+E)) where k is the number of cycles packed.
func Pack(g *dfvsgraph.Graph, maxDepth int) int {
	blocked := make(map[int]bool)
	usable := func(v int) bool { return !blocked[v] }

	count := 0
	for {
		cycle := findShortCycle(g, usable, maxDepth)
		if cycle == nil {
			break
		}
		for _, v := range cycle {
			blocked[v] = true
		}
		count++
	}

	return count
}
