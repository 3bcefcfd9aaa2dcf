package heuristic

import (
	"sort"

	"github.com/katalvlaran/dfvs/dfvsgraph"
)

// LocalSearch improves a feasible feedback vertex set s over g with
// deterministic first-improvement remove-one and swap-two moves. Neither
// move is ever trusted incrementally: every candidate is checked with a
// full acyclicity pass before being accepted, so the result is always a
// genuinely feasible set, never a merely plausible one. g is never
// mutated; removal is always simulated via the excluded-vertex set
// isAcyclicExcluding checks against.
//
// Remove-one strictly shrinks the set, so it alone cannot cycle. Swap-two
// does not — two equally valid same-size choices can swap back and forth
// forever — so it is only tried once remove-one finds nothing, and at most
// maxSwapRounds swap moves are accepted per call as a safety net against
// exactly that lateral oscillation, rather than relying on a convergence
// proof.
// Complexity: each pass is O(|s| * (V+E)) for remove-one and
// O(|s| * avg-degree * (V+E)) for swap-two.
func LocalSearch(g *dfvsgraph.Graph, s []int) []int {
	excluded := toSet(s)

	const maxSwapRounds = 4
	swapRounds := 0

	for {
		if v, ok := tryRemoveOne(g, excluded); ok {
			delete(excluded, v)
			continue
		}
		if swapRounds >= maxSwapRounds {
			break
		}
		if removed, added, ok := trySwapTwo(g, excluded); ok {
			delete(excluded, removed)
			excluded[added] = true
			swapRounds++
			continue
		}
		break
	}

	return sortedSetKeys(excluded)
}

// tryRemoveOne looks for a vertex in excluded whose removal from the
// solution still leaves the graph acyclic — i.e. it was never actually
// needed. Scans in ascending id order and accepts the first such vertex.
func tryRemoveOne(g *dfvsgraph.Graph, excluded map[int]bool) (int, bool) {
	for _, v := range sortedSetKeys(excluded) {
		trial := cloneSetWithout(excluded, v)
		if isAcyclicExcluding(g, trial) {
			return v, true
		}
	}
	return 0, false
}

// trySwapTwo looks for a pair (v in the solution, u not in it, adjacent
// to v in g) such that removing v and adding u instead keeps the graph
// acyclic. Candidate partners are bounded to v's own neighbors, since a
// vertex with no structural relationship to v is never a useful swap.
func trySwapTwo(g *dfvsgraph.Graph, excluded map[int]bool) (removed, added int, ok bool) {
	for _, v := range sortedSetKeys(excluded) {
		without := cloneSetWithout(excluded, v)
		for _, u := range swapCandidates(g, v) {
			if without[u] {
				continue
			}
			trial := cloneSetWith(without, u)
			if isAcyclicExcluding(g, trial) {
				return v, u, true
			}
		}
	}
	return 0, 0, false
}

func swapCandidates(g *dfvsgraph.Graph, v int) []int {
	if !g.IsLive(v) {
		return nil
	}
	out := append([]int(nil), g.NeighborsOut(v)...)
	out = append(out, g.NeighborsIn(v)...)
	sort.Ints(out)
	dedup := out[:0]
	for i, x := range out {
		if i == 0 || x != out[i-1] {
			dedup = append(dedup, x)
		}
	}
	return dedup
}

func toSet(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}

func cloneSetWithout(m map[int]bool, skip int) map[int]bool {
	out := make(map[int]bool, len(m))
	for k := range m {
		if k != skip {
			out[k] = true
		}
	}
	return out
}

func cloneSetWith(m map[int]bool, add int) map[int]bool {
	out := make(map[int]bool, len(m)+1)
	for k := range m {
		out[k] = true
	}
	out[add] = true
	return out
}

func sortedSetKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
