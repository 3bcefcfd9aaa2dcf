package branchbound_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/dfvs/branchbound"
	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/stretchr/testify/require"
)

func isFeasible(t *testing.T, n int, edges [][2]int, s []int) {
	t.Helper()
	g := dfvsgraph.NewGraph(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	excluded := make(map[int]bool, len(s))
	for _, v := range s {
		excluded[v] = true
	}
	for _, v := range g.LiveVertices() {
		if excluded[v] {
			g.RemoveVertex(v)
		}
	}
	require.Empty(t, plainCycleCheck(t, g))
}

// plainCycleCheck is a tiny brute-force cycle check used only by tests.
func plainCycleCheck(t *testing.T, g *dfvsgraph.Graph) []int {
	t.Helper()
	state := make(map[int]int)
	var cyclic []int

	var visit func(v int)
	visit = func(v int) {
		state[v] = 1
		for _, w := range g.NeighborsOut(v) {
			switch state[w] {
			case 0:
				visit(w)
			case 1:
				cyclic = append(cyclic, w)
			}
		}
		state[v] = 2
	}

	for _, v := range g.LiveVertices() {
		if state[v] == 0 {
			visit(v)
		}
	}

	return cyclic
}

func TestSolveSCCOnDAGReturnsEmptyOptimal(t *testing.T) {
	g := dfvsgraph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	res := branchbound.SolveSCC(g, nil, time.Time{}, branchbound.DefaultConfig())
	require.Equal(t, branchbound.StatusOptimal, res.Status)
	require.Empty(t, res.S)
}

func TestSolveSCCOnSelfLoopForcesExactlyThatVertex(t *testing.T) {
	g := dfvsgraph.NewGraph(3)
	g.AddEdge(0, 0)
	g.AddEdge(1, 2)

	res := branchbound.SolveSCC(g, []int{0, 1}, time.Time{}, branchbound.DefaultConfig())
	require.Equal(t, branchbound.StatusOptimal, res.Status)
	require.Equal(t, []int{0}, res.S)
}

func TestSolveSCCOnTwoDisjointTwoCyclesFindsSizeTwo(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}}
	g := dfvsgraph.NewGraph(4)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	res := branchbound.SolveSCC(g, []int{0, 1, 2, 3}, time.Time{}, branchbound.DefaultConfig())
	require.Equal(t, branchbound.StatusOptimal, res.Status)
	require.Len(t, res.S, 2)
	isFeasible(t, 4, edges, res.S)
}

func TestSolveSCCOnMutualTriangleFindsSizeTwo(t *testing.T) {
	// 0<->1, 1<->2, 0<->2: removing any single vertex still leaves a
	// mutual edge between the other two (still cyclic), but removing any
	// two leaves a single vertex (trivially acyclic) — true optimum is 2,
	// independent of which internal rules happen to fire on the way
	// there. This graph is exactly the shape the TWIN rule targets, so it
	// also exercises the root-reduction merge-reconciliation path.
	edges := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {0, 2}, {2, 0}}
	g := dfvsgraph.NewGraph(3)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	res := branchbound.SolveSCC(g, []int{0, 1, 2}, time.Time{}, branchbound.DefaultConfig())
	require.Equal(t, branchbound.StatusOptimal, res.Status)
	require.Len(t, res.S, 2)
	isFeasible(t, 3, edges, res.S)
}

func TestSolveSCCOnOverlappingCyclesFindsSizeOne(t *testing.T) {
	// A 5-cycle 0->1->2->3->4->0 plus a chord 3->1 creating a second,
	// shorter cycle 1->2->3->1. Vertices {1,2,3} lie on both cycles, so
	// removing any single one of them (e.g. 2) breaks both at once —
	// true optimum is 1.
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {3, 1}}
	g := dfvsgraph.NewGraph(5)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	res := branchbound.SolveSCC(g, []int{0, 1, 2, 3, 4}, time.Time{}, branchbound.DefaultConfig())
	require.Equal(t, branchbound.StatusOptimal, res.Status)
	require.Len(t, res.S, 1)
	isFeasible(t, 5, edges, res.S)
}

func TestSolveSCCExpiredDeadlineReturnsTimeoutWithoutWorsening(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {0, 2}, {2, 0}}
	g := dfvsgraph.NewGraph(3)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}

	initial := []int{0, 1, 2}
	res := branchbound.SolveSCC(g, initial, time.Now().Add(-time.Second), branchbound.DefaultConfig())
	require.Equal(t, branchbound.StatusTimeout, res.Status)
	require.ElementsMatch(t, initial, res.S)

	// SolveSCC must not leave the graph mutated for the caller.
	require.True(t, g.IsLive(0))
	require.True(t, g.IsLive(1))
	require.True(t, g.IsLive(2))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "OPTIMAL", branchbound.StatusOptimal.String())
	require.Equal(t, "TIMEOUT", branchbound.StatusTimeout.String())
}
