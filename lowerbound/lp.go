package lowerbound

import (
	"math"

	"github.com/katalvlaran/dfvs/dfvsgraph"
)

// LP computes a fractional cycle-packing lower bound via a primal-dual
// bottleneck-saturation scheme: each live vertex starts with a unit
// "budget." Every round finds a short cycle composed entirely of
// vertices with positive remaining budget, then charges every vertex in
// that cycle the bottleneck (smallest remaining) amount, adding that
// amount to the running total. A vertex whose budget reaches zero is
// excluded from further cycles (it is already "paid for"), so distinct
// rounds' charges to a shared vertex never sum past 1 — exactly the dual
// feasibility condition that makes the running total a valid lower bound
// on the minimum hitting set over all cycles of length <= maxDepth, and
// therefore on the minimum feedback vertex set itself.
//
// Strictly generalizes Pack: a disjoint packing is the special case
// where every charge saturates its whole cycle in one round.
// Complexity: O(k * V * (V+E)) where k is the number of saturating
// rounds (bounded by the number of live vertices, since each round
// exhausts at least one vertex's budget).
func LP(g *dfvsgraph.Graph, maxDepth int) int {
	remaining := make(map[int]float64)
	for _, v := range g.LiveVertices() {
		remaining[v] = 1.0
	}
	usable := func(v int) bool { return remaining[v] > 1e-9 }

	total := 0.0
	for {
		cycle := findShortCycle(g, usable, maxDepth)
		if cycle == nil {
			break
		}

		bottleneck := math.MaxFloat64
		for _, v := range cycle {
			if remaining[v] < bottleneck {
				bottleneck = remaining[v]
			}
		}
		for _, v := range cycle {
			remaining[v] -= bottleneck
		}
		total += bottleneck
	}

	// LB_lp = ceil(Sum x_v): total is a valid fractional lower bound and
	// OPT is integral, so rounding up (not down) is always sound and
	// strictly tighter. The epsilon shaves off accumulated floating-point
	// overshoot before ceiling so an exact integer total isn't bumped up
	// by one.
	return int(math.Ceil(total - 1e-9))
}

// Combined returns max(Pack(g, maxDepth), LP(g, maxDepth)).
func Combined(g *dfvsgraph.Graph, maxDepth int) int {
	pack := Pack(g, maxDepth)
	lp := LP(g, maxDepth)
	if lp > pack {
		return lp
	}
	return pack
}
