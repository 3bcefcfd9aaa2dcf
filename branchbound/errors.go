package branchbound

import "errors"

// ErrInternalInvariant wraps any panic recovered from a SolveSCC
// subproblem (stale checkpoint, operation on a dead vertex, negative
// lower bound) — unreachable by construction per the invariant taxonomy,
// so reaching one here means a bug rather than a malformed instance.
var ErrInternalInvariant = errors.New("branchbound: internal invariant violation")
