package dfvsgraph

// undoRecord is the closed set of journal entries a mutation can push:
// edge addition, edge removal, vertex removal, or a live-flag flip. Each
// concrete type knows how to reverse exactly the mutation that created it;
// Rollback replays them in LIFO order.
type undoRecord interface {
	undo(g *Graph)
}

// edgeAddUndo reverses an AddEdge(u,v): delete the edge.
type edgeAddUndo struct{ u, v int }

func (r edgeAddUndo) undo(g *Graph) {
	delete(g.out[r.u], r.v)
	delete(g.in[r.v], r.u)
}

// edgeRemoveUndo reverses a RemoveEdge(u,v): recreate the edge.
type edgeRemoveUndo struct{ u, v int }

func (r edgeRemoveUndo) undo(g *Graph) {
	g.out[r.u][r.v] = true
	g.in[r.v][r.u] = true
}

// vertexRemoveUndo reverses RemoveVertex(v): restore liveness, the
// vertex's own adjacency sets, and every neighbor's back-reference to v.
// Captured as a single record (rather than one edgeRemoveUndo per incident
// edge) so RemoveVertex stays O(deg(v)) instead of O(deg(v)) journal
// entries each carrying their own bookkeeping overhead.
type vertexRemoveUndo struct {
	v        int
	out, in  map[int]bool
}

func (r vertexRemoveUndo) undo(g *Graph) {
	g.live[r.v] = true
	g.out[r.v] = r.out
	g.in[r.v] = r.in
	for w := range r.out {
		g.in[w][r.v] = true
	}
	for w := range r.in {
		g.out[w][r.v] = true
	}
}

// flagFlipUndo reverses a bare live-flag change that was not accompanied by
// an adjacency rewrite (currently unused by RemoveVertex/ContractVertex,
// which use vertexRemoveUndo, but kept as its own record kind per the
// journal's four-way taxonomy so a future rule that only needs to flip
// liveness — e.g. marking a vertex forced-in-S without touching edges —
// does not need to fabricate a fake adjacency snapshot).
type flagFlipUndo struct {
	v        int
	wasLive bool
}

func (r flagFlipUndo) undo(g *Graph) {
	g.live[r.v] = r.wasLive
}

// push appends an undo record to the journal.
func (g *Graph) push(r undoRecord) {
	g.journal = append(g.journal, r)
}

// Checkpoint returns a handle to the current journal position. Rollback(h)
// later undoes every mutation recorded since this call.
// Complexity: O(1).
func (g *Graph) Checkpoint() Checkpoint {
	return Checkpoint(len(g.journal))
}

// Rollback restores the graph to the state it was in when h was produced,
// undoing journal entries in LIFO order. Complexity: O(journal-since-h).
//
// Rollback on a handle whose journal position has already been passed
// (the journal was rolled back below it), or on a negative handle, is a
// programming error and panics. A handle from a different Graph is a
// programming error too, but is not detected.
func (g *Graph) Rollback(h Checkpoint) {
	if int(h) < 0 || int(h) > len(g.journal) {
		panic("dfvsgraph: stale checkpoint handle")
	}
	for i := len(g.journal) - 1; i >= int(h); i-- {
		g.journal[i].undo(g)
	}
	g.journal = g.journal[:h]
}
