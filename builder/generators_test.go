package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dfvs/builder"
	"github.com/stretchr/testify/require"
)

func TestRandomTournamentHasExactlyOneEdgePerPair(t *testing.T) {
	const n = 8
	g := builder.RandomTournament(n, rand.NewSource(1))
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			fwd := g.HasEdge(u, v)
			back := g.HasEdge(v, u)
			require.True(t, fwd != back, "exactly one of (%d,%d)/(%d,%d) should exist", u, v, v, u)
		}
	}
}

func TestRandomTournamentIsDeterministicForFixedSeed(t *testing.T) {
	const n = 6
	g1 := builder.RandomTournament(n, rand.NewSource(42))
	g2 := builder.RandomTournament(n, rand.NewSource(42))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			require.Equal(t, g1.HasEdge(u, v), g2.HasEdge(u, v))
		}
	}
}

func TestGNPZeroProbabilityProducesNoEdges(t *testing.T) {
	g := builder.GNP(10, 0, rand.NewSource(1))
	for _, v := range g.LiveVertices() {
		require.Equal(t, 0, g.DegreeOut(v))
	}
}

func TestGNPOneProbabilityProducesCompleteDigraph(t *testing.T) {
	const n = 5
	g := builder.GNP(n, 1, rand.NewSource(1))
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			require.True(t, g.HasEdge(u, v))
		}
	}
}

func TestDisjointCyclesProducesExactVertexCount(t *testing.T) {
	g := builder.DisjointCycles(3, 4)
	require.Len(t, g.LiveVertices(), 12)
	for c := 0; c < 4; c++ {
		base := c * 3
		require.True(t, g.HasEdge(base, base+1))
		require.True(t, g.HasEdge(base+1, base+2))
		require.True(t, g.HasEdge(base+2, base))
	}
}

func TestChainWithChordsAlwaysContainsTheBaseCycle(t *testing.T) {
	const n = 7
	g := builder.ChainWithChords(n, 0, rand.NewSource(1))
	for i := 0; i < n; i++ {
		require.True(t, g.HasEdge(i, (i+1)%n))
	}
}
