package heuristic

import "github.com/katalvlaran/dfvs/dfvsgraph"

const (
	white uint8 = iota
	gray
	black
)

// topoFrame is one level of the explicit DFS stack used by
// isAcyclicExcluding, following the same iterative-Tarjan-style
// call-stack avoidance as package scc.
type topoFrame struct {
	v         int
	neighbors []int
	next      int
}

// isAcyclicExcluding reports whether g's live vertex set, with every
// vertex in excluded treated as already removed, contains no directed
// cycle (including self-loops). It does not mutate g.
// Complexity: O(V + E).
func isAcyclicExcluding(g *dfvsgraph.Graph, excluded map[int]bool) bool {
	state := make([]uint8, g.N())

	for _, start := range g.LiveVertices() {
		if excluded[start] || state[start] != white {
			continue
		}
		if !walk(g, start, excluded, state) {
			return false
		}
	}

	return true
}

func walk(g *dfvsgraph.Graph, start int, excluded map[int]bool, state []uint8) bool {
	state[start] = gray
	frames := []*topoFrame{{v: start, neighbors: filterExcluded(g.NeighborsOut(start), excluded)}}

	for len(frames) > 0 {
		top := frames[len(frames)-1]

		if top.next < len(top.neighbors) {
			w := top.neighbors[top.next]
			top.next++

			switch state[w] {
			case white:
				state[w] = gray
				frames = append(frames, &topoFrame{v: w, neighbors: filterExcluded(g.NeighborsOut(w), excluded)})
			case gray:
				return false
			}
			continue
		}

		state[top.v] = black
		frames = frames[:len(frames)-1]
	}

	return true
}

func filterExcluded(ns []int, excluded map[int]bool) []int {
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		if !excluded[n] {
			out = append(out, n)
		}
	}
	return out
}
