package lowerbound

import "github.com/katalvlaran/dfvs/dfvsgraph"

// findShortCycle returns the vertex sequence of the first directed cycle
// of length <= maxDepth found by a breadth-first search, restricted to
// vertices for which usable returns true, scanning candidate start
// vertices in ascending id order for a deterministic result. Returns nil
// if no such cycle exists.
// Complexity: O(V * (V+E)) worst case (one bounded BFS per start
// vertex), capped in practice by maxDepth limiting each BFS's frontier.
func findShortCycle(g *dfvsgraph.Graph, usable func(int) bool, maxDepth int) []int {
	for _, start := range g.LiveVertices() {
		if !usable(start) {
			continue
		}
		if cycle := shortestCycleThrough(g, start, usable, maxDepth); cycle != nil {
			return cycle
		}
	}
	return nil
}

func shortestCycleThrough(g *dfvsgraph.Graph, start int, usable func(int) bool, maxDepth int) []int {
	depth := map[int]int{start: 0}
	parent := map[int]int{start: -1}
	queue := []int{start}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if depth[v] >= maxDepth {
			continue
		}

		for _, w := range g.NeighborsOut(v) {
			if !usable(w) {
				continue
			}
			if w == start {
				return reconstructCycle(start, v, parent)
			}
			if _, seen := depth[w]; !seen {
				depth[w] = depth[v] + 1
				parent[w] = v
				queue = append(queue, w)
			}
		}
	}

	return nil
}

func reconstructCycle(start, tail int, parent map[int]int) []int {
	var path []int
	for cur := tail; cur != start; cur = parent[cur] {
		path = append(path, cur)
	}
	path = append(path, start)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
