// Package builder generates small, deterministic synthetic DFVS
// instances for tests and cmd/dfvs-bench. It is a fresh package: the
// teacher's own builder is a ~30-file object model wired to
// core.Graph's string-keyed vertices, which this module's
// dfvsgraph.Graph has no use for. What is kept is the teacher's
// functional-options constructor spirit and its benchmark corpus's
// random-graph recipes (random tournaments, G(n,p) digraphs), emitting
// a *dfvsgraph.Graph directly instead of going through an intermediate
// builder object.
package builder
