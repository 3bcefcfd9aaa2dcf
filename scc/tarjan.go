package scc

import (
	"sort"

	"github.com/katalvlaran/dfvs/dfvsgraph"
)

// frame is one level of the explicit DFS call stack: the vertex being
// visited and how far through its out-neighbor list the walk has gotten.
type frame struct {
	v         int
	neighbors []int
	next      int
}

// Decompose returns the strongly connected components of g's live vertex
// set, each as a sorted-ascending slice of vertex ids. Components are
// returned in reverse topological order: Tarjan's algorithm pops a
// component off the stack only once every component it can reach has
// already been popped, so the discovery order below is already the
// component DAG's reverse topological order and needs no further
// resorting — doing so deterministically for a fixed graph and fixed
// LiveVertices order (spec's single-threaded determinism property).
//
// Runs Tarjan's algorithm over an explicit frame stack rather than the
// recursive formulation, so a long DFS chain (common on PACE's sparse,
// deep digraphs) cannot exhaust the goroutine stack.
// Complexity: O(V + E).
func Decompose(g *dfvsgraph.Graph) [][]int {
	n := g.N()
	index := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	var tarjanStack []int
	var frames []*frame
	var sccs [][]int
	next := 1

	for _, start := range g.LiveVertices() {
		if index[start] != 0 {
			continue
		}

		index[start] = next
		low[start] = next
		next++
		tarjanStack = append(tarjanStack, start)
		onStack[start] = true
		frames = append(frames, &frame{v: start, neighbors: g.NeighborsOut(start)})

		for len(frames) > 0 {
			top := frames[len(frames)-1]

			if top.next < len(top.neighbors) {
				w := top.neighbors[top.next]
				top.next++

				switch {
				case index[w] == 0:
					index[w] = next
					low[w] = next
					next++
					tarjanStack = append(tarjanStack, w)
					onStack[w] = true
					frames = append(frames, &frame{v: w, neighbors: g.NeighborsOut(w)})
				case onStack[w]:
					if index[w] < low[top.v] {
						low[top.v] = index[w]
					}
				}
				continue
			}

			// Exhausted top's neighbors: fold its low-link into its parent
			// (the frame beneath it) and, if it is an SCC root, pop the
			// component off the Tarjan stack.
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1]
				if low[top.v] < low[parent.v] {
					low[parent.v] = low[top.v]
				}
			}

			if low[top.v] == index[top.v] {
				var component []int
				for {
					w := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					onStack[w] = false
					component = append(component, w)
					if w == top.v {
						break
					}
				}
				sort.Ints(component)
				sccs = append(sccs, component)
			}
		}
	}

	return sccs
}

// IsTrivial reports whether component (as produced by Decompose) is a
// single vertex with no self-loop — already acyclic on its own, and
// therefore not a candidate for branch-and-bound search or the parallel
// per-SCC driver.
func IsTrivial(g *dfvsgraph.Graph, component []int) bool {
	return len(component) == 1 && !g.HasSelfLoop(component[0])
}
