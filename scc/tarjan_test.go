package scc_test

import (
	"testing"

	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/katalvlaran/dfvs/scc"
	"github.com/stretchr/testify/require"
)

func sccSetOf(t *testing.T, components [][]int, v int) []int {
	t.Helper()
	for _, c := range components {
		for _, u := range c {
			if u == v {
				return c
			}
		}
	}
	t.Fatalf("vertex %d not found in any component", v)
	return nil
}

func TestDecomposeDAGAllTrivial(t *testing.T) {
	g := dfvsgraph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	components := scc.Decompose(g)
	require.Len(t, components, 4)
	for _, c := range components {
		require.True(t, scc.IsTrivial(g, c))
	}
}

func TestDecomposeTwoDisjointTwoCycles(t *testing.T) {
	// {0,1} and {2,3} are separate 2-cycles, joined by a one-way bridge.
	g := dfvsgraph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)
	g.AddEdge(1, 2)

	components := scc.Decompose(g)
	require.Len(t, components, 2)

	first := sccSetOf(t, components, 0)
	require.ElementsMatch(t, []int{0, 1}, first)
	require.False(t, scc.IsTrivial(g, first))

	second := sccSetOf(t, components, 2)
	require.ElementsMatch(t, []int{2, 3}, second)
}

func TestDecomposeK4IsOneComponent(t *testing.T) {
	g := dfvsgraph.NewGraph(4)
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			if u != v {
				g.AddEdge(u, v)
			}
		}
	}

	components := scc.Decompose(g)
	require.Len(t, components, 1)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, components[0])
}

func TestDecomposeSelfLoopIsNontrivial(t *testing.T) {
	g := dfvsgraph.NewGraph(2)
	g.AddEdge(0, 0)

	components := scc.Decompose(g)
	loopComponent := sccSetOf(t, components, 0)
	require.False(t, scc.IsTrivial(g, loopComponent))
}

func TestDecomposeSkipsDeadVertices(t *testing.T) {
	g := dfvsgraph.NewGraph(3)
	g.AddEdge(0, 1)
	g.RemoveVertex(1)

	components := scc.Decompose(g)
	total := 0
	for _, c := range components {
		total += len(c)
	}
	require.Equal(t, 2, total)
}

func TestDecomposeReturnsReverseTopologicalOrder(t *testing.T) {
	// {0,1} -> {2,3} is the only bridge, one-way: {2,3} cannot reach
	// {0,1}. Reverse topological order must place the sink component
	// {2,3} before the source component {0,1}, the opposite of
	// ascending-by-smallest-member-id.
	g := dfvsgraph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)
	g.AddEdge(1, 2)

	components := scc.Decompose(g)
	require.Len(t, components, 2)
	require.Equal(t, []int{2, 3}, components[0])
	require.Equal(t, []int{0, 1}, components[1])
}

func TestDecomposeDeterministicOrdering(t *testing.T) {
	g := dfvsgraph.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)

	a := scc.Decompose(g)
	b := scc.Decompose(g)
	require.Equal(t, a, b)

	for i := 1; i < len(a); i++ {
		require.Less(t, a[i-1][0], a[i][0])
	}
}
