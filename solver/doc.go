// Package solver wires Components A-G into the two core entry points: a
// fresh Graph in, a minimum (SolveExact) or feasible (SolveHeuristic)
// feedback vertex set out. It owns root-level FullLevel reduction and SCC
// decomposition; everything below that — the per-SCC search, the
// parallel driver, the heuristic construction — is delegated to its own
// package.
package solver
