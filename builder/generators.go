package builder

import (
	"math/rand"

	"github.com/katalvlaran/dfvs/dfvsgraph"
)

// RandomTournament builds a tournament on n vertices: for every pair
// u < v exactly one of (u,v) or (v,u) is added, chosen uniformly at
// random from src. Every tournament contains a Hamiltonian path, and it
// contains a cycle unless its orientation is transitive, which a random
// orientation rarely is for non-trivial n; the result is not checked for
// acyclicity — grounded on the teacher's flow/flow_bench_test.go random-
// graph recipe, generalized from undirected G(n,p) to a directed
// complete-orientation model.
func RandomTournament(n int, src rand.Source) *dfvsgraph.Graph {
	g := dfvsgraph.NewGraph(n)
	r := rand.New(src)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Intn(2) == 0 {
				g.AddEdge(u, v)
			} else {
				g.AddEdge(v, u)
			}
		}
	}

	return g
}

// GNP builds a directed Erdos-Renyi instance: every ordered pair
// (u, v), u != v, gets an edge independently with probability p.
// Grounded on the teacher's flow/flow_bench_test.go G(n,p) construction,
// generalized to both edge directions instead of one undirected choice
// per pair.
func GNP(n int, p float64, src rand.Source) *dfvsgraph.Graph {
	g := dfvsgraph.NewGraph(n)
	r := rand.New(src)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				g.AddEdge(u, v)
			}
		}
	}

	return g
}

// DisjointCycles builds count vertex-disjoint directed cycles of length
// cycleLen each, occupying count*cycleLen vertices. Useful as a lower-
// bound sanity instance: the true DFVS size is exactly count, one per
// cycle, since the cycles share no vertex.
func DisjointCycles(cycleLen, count int) *dfvsgraph.Graph {
	n := cycleLen * count
	g := dfvsgraph.NewGraph(n)
	for c := 0; c < count; c++ {
		base := c * cycleLen
		for i := 0; i < cycleLen; i++ {
			g.AddEdge(base+i, base+(i+1)%cycleLen)
		}
	}

	return g
}

// ChainWithChords builds a single directed cycle over n vertices plus
// extra random chords (u, v) with u < v added with probability
// chordProb, each oriented forward or backward uniformly at random.
// The base cycle guarantees the instance is never trivially acyclic;
// the chords add overlapping cycles of the kind CORE/DOME/TWIN are
// meant to peel away before branch-and-bound ever runs.
func ChainWithChords(n int, chordProb float64, src rand.Source) *dfvsgraph.Graph {
	g := dfvsgraph.NewGraph(n)
	r := rand.New(src)
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if r.Float64() < chordProb {
				if r.Intn(2) == 0 {
					g.AddEdge(u, v)
				} else {
					g.AddEdge(v, u)
				}
			}
		}
	}

	return g
}
