// Package heuristic computes a feasible, hopefully small feedback vertex
// set to use as the branch-and-bound search's initial upper bound (and as
// the sole answer in heuristic mode, where the search budget never
// reaches a branch-and-bound pass at all).
//
// ConstructGreedy builds a first feasible set by repeatedly removing the
// locally highest-scoring vertex and re-running FastLevel reduction
// between picks. LocalSearch then improves it with deterministic
// first-improvement remove-one and swap-two moves, each move validated by
// a full acyclicity check rather than trusted incrementally, mirroring
// the teacher's 2-opt engine's "recompute if accept, never drift" style.
package heuristic
