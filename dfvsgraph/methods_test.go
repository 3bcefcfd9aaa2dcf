package dfvsgraph_test

import (
	"testing"

	"github.com/katalvlaran/dfvs/dfvsgraph"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeIdempotent(t *testing.T) {
	g := dfvsgraph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(0, 1) // duplicate, must be a no-op
	require.True(t, g.HasEdge(0, 1))
	require.Equal(t, 1, g.DegreeOut(0))
	require.Equal(t, 1, g.DegreeIn(1))
}

func TestRemoveVertexDetachesNeighbors(t *testing.T) {
	g := dfvsgraph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.RemoveVertex(1)

	require.False(t, g.IsLive(1))
	require.Equal(t, 0, g.DegreeOut(0))
	require.Equal(t, 0, g.DegreeIn(2))
}

func TestCheckpointRollbackFidelity(t *testing.T) {
	g := dfvsgraph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	h := g.Checkpoint()
	g.AddEdge(3, 0)
	_ = g.RemoveEdge(0, 1)
	g.RemoveVertex(2)

	g.Rollback(h)

	require.True(t, g.IsLive(2))
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 3))
	require.False(t, g.HasEdge(3, 0))
}

func TestNestedCheckpoints(t *testing.T) {
	g := dfvsgraph.NewGraph(3)
	g.AddEdge(0, 1)

	outer := g.Checkpoint()
	g.AddEdge(1, 2)
	inner := g.Checkpoint()
	g.AddEdge(2, 0)
	require.True(t, g.HasEdge(2, 0))

	g.Rollback(inner)
	require.False(t, g.HasEdge(2, 0))
	require.True(t, g.HasEdge(1, 2))

	g.Rollback(outer)
	require.False(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(0, 1))
}

func TestContractVertexBypassesAndCollapsesMultiEdges(t *testing.T) {
	// 0 -> 1 -> 2, 0 -> 1 -> 3; contracting 1 should leave 0->2 and 0->3.
	g := dfvsgraph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(1, 3)

	forced := g.ContractVertex(1)
	require.Empty(t, forced)
	require.False(t, g.IsLive(1))
	require.True(t, g.HasEdge(0, 2))
	require.True(t, g.HasEdge(0, 3))
}

func TestContractVertexForcesSelfLoopEndpoint(t *testing.T) {
	// 0 -> 1 -> 0: contracting 1 would create a 0->0 self-loop; 0 must be forced.
	g := dfvsgraph.NewGraph(2)
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)

	forced := g.ContractVertex(1)
	require.Equal(t, []int{0}, forced)
	require.False(t, g.HasSelfLoop(0))
}

func TestSubgraphRenumbersAndPreservesEdges(t *testing.T) {
	g := dfvsgraph.NewGraph(5)
	g.AddEdge(1, 3)
	g.AddEdge(3, 1)
	g.AddEdge(1, 0) // 0 not part of the subgraph; must be dropped

	sub, localToOrig := g.Subgraph([]int{1, 3})
	require.Equal(t, []int{1, 3}, localToOrig)
	require.True(t, sub.HasEdge(0, 1))
	require.True(t, sub.HasEdge(1, 0))
	require.Equal(t, 2, sub.N())
}

func TestNegativeCheckpointPanics(t *testing.T) {
	g := dfvsgraph.NewGraph(2)
	h := g.Checkpoint()
	g.Rollback(h)
	require.Panics(t, func() { g.Rollback(h - 1) })
}

func TestOperationOnDeadVertexPanics(t *testing.T) {
	g := dfvsgraph.NewGraph(2)
	g.RemoveVertex(0)
	require.Panics(t, func() { g.AddEdge(0, 1) })
}
