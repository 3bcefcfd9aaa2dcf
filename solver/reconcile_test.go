package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReconcileMergedResolvesChainedMerges pins a two-level TWIN chain:
// round one merges vertex 5 into canonical 2 (a (2,5) 2-cycle), a later
// round then merges 2 itself into canonical 1 (a (1,2) 2-cycle). Per
// applyTwin's contract, excluding 1 forces 2 in to break (1,2) — and
// since 2 is then effectively present, (2,5) is already broken, so 5
// must NOT also be added. A flat single-pass reconciliation instead adds
// both 2 and 5 unconditionally (since 2 is never literally a member of
// s to begin with), producing a feasible but non-minimum result.
func TestReconcileMergedResolvesChainedMerges(t *testing.T) {
	merged := map[int][]int{2: {5}, 1: {2}}
	require.Equal(t, []int{2}, reconcileMerged(nil, merged))
	require.Equal(t, []int{2, 3}, reconcileMerged([]int{3}, merged))
}

// TestReconcileMergedAddsDeeperAliasWhenChosenRootSkipsIntermediate
// covers the complementary case: choosing root 1 breaks (1,2), so 2 is
// not added — but 2 is then effectively absent, so its own alias 5 must
// still be added to break (2,5).
func TestReconcileMergedAddsDeeperAliasWhenChosenRootSkipsIntermediate(t *testing.T) {
	merged := map[int][]int{2: {5}, 1: {2}}
	require.Equal(t, []int{1, 5}, reconcileMerged([]int{1}, merged))
}

func TestReconcileMergedSingleLevel(t *testing.T) {
	merged := map[int][]int{5: {6, 7}}
	require.Equal(t, []int{1, 6, 7}, reconcileMerged([]int{1}, merged))
	require.Equal(t, []int{1, 5}, reconcileMerged([]int{1, 5}, merged))
}

func TestReconcileMergedNoMerges(t *testing.T) {
	require.Equal(t, []int{1, 2}, reconcileMerged([]int{1, 2}, nil))
}
