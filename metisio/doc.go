// Package metisio reads and writes the METIS-derived text format used by
// PACE DFVS instances and the reference verifier: a 1-indexed,
// line-oriented adjacency list with a single header line and `%`-prefixed
// comments.
//
// Parsing follows the teacher's general error-handling shape (sentinel
// errors, wrapped with line context) rather than anything reflection- or
// struct-tag-driven, since the format has no schema beyond "numbers on a
// line." The line-scanning style itself — bufio.Scanner, skip blank and
// comment lines, Sscan the fixed fields — is grounded on the retrieved
// pack's Matrix Market reader (gonum's linsolve/internal/mmarket), the
// closest analogue to a line-oriented numeric graph format in the corpus.
package metisio
