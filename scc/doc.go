// Package scc decomposes a dfvsgraph.Graph into strongly connected
// components using Tarjan's algorithm.
//
// The textbook formulation recurses once per DFS tree edge, which risks
// stack exhaustion on the deep, highly-unbalanced digraphs PACE instances
// can produce at ~10^5 vertices. Decompose therefore runs an explicit
// frame stack instead of letting the call stack do the work, following the
// same low-link/on-stack bookkeeping as the recursive formulation.
package scc
