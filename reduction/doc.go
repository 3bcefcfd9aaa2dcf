// Package reduction implements the DFVS kernelization rule catalog: a set
// of safe reductions that either force a vertex into the solution set or
// remove structure that cannot affect the optimum, applied to a worklist
// fixpoint.
//
// Two levels are exposed. Fast runs only the cheap, purely local rules
// (SELF-LOOP, SINK/SOURCE, CORE) and is meant to run at every
// branch-and-bound node. Full additionally runs DOME, DOUBLE EDGE
// (PI-vertex), TWIN, and the bounded CROWN rule, and is meant to run once
// at the root of the search; branch-and-bound's Branch-OUT commits run
// Fast only (see DESIGN.md).
//
// Every rule mutates the graph in place via dfvsgraph's journal, so its
// effect can be undone with a single Rollback to the caller's checkpoint.
package reduction
