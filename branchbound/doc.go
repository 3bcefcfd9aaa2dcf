// Package branchbound implements the exact search (Component F): a
// depth-first branch-and-bound over a single strongly-connected residual
// subgraph, interleaving reduction, lower-bound pruning, and a two-way
// branch (force the chosen vertex into the solution, or force it to
// remain and contract it out of the residual).
//
// The search never trusts incremental state: every recursive call starts
// by checkpointing the graph, runs FastLevel reduction to a fixpoint, and
// restores on the way back out, exactly as the teacher's degree-1
// relaxation branch-and-bound search drives its own checkpoints through
// explicit struct state rather than closures.
package branchbound
