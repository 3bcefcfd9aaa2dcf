// Package dfvsgraph implements the mutable directed graph store used by the
// DFVS solver pipeline: a contiguous vertex range [0,n), set-semantics
// out/in adjacency per vertex, a live flag distinguishing deleted from
// present vertices, and a journal of undo records that lets a checkpoint
// taken mid-search be rolled back in O(journal-since-checkpoint).
//
// The type is grounded on the lvlath core.Graph family (separate read/write
// surfaces for vertices vs. edges, sentinel errors, deterministic neighbor
// enumeration) but drops lvlath's internal RWMutex pair entirely: per the
// solver's concurrency model, one Graph is owned by exactly one
// branch-and-bound worker for its whole lifetime and is never shared across
// goroutines, so the locking that a general-purpose concurrent graph library
// needs would be dead weight here.
//
// Vertex ids are the dense integer range [0,n) fixed at construction time;
// RemoveVertex/ContractVertex only ever mark a vertex dead or rewrite edges,
// they never renumber or free ids, so an id always keeps its meaning for the
// lifetime of a Graph.
package dfvsgraph

import "errors"

// Sentinel errors for dfvsgraph. Only ErrEdgeNotFound is returned (by
// RemoveEdge); adding a duplicate edge is a no-op, not an error.
// Operations on an out-of-range or dead vertex, or a stale checkpoint
// handle, are programming errors and panic instead — see checkRange,
// checkLive and Rollback.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0,n). It is the
	// value checkRange panics with, never a returned error.
	ErrVertexOutOfRange = errors.New("dfvsgraph: vertex id out of range")

	// ErrEdgeNotFound indicates RemoveEdge was asked to remove an edge that
	// does not currently exist.
	ErrEdgeNotFound = errors.New("dfvsgraph: edge not found")
)
