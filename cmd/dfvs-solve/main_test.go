package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveWorkersFlagTakesPrecedence(t *testing.T) {
	t.Setenv("DFVS_THREADS", "7")
	require.Equal(t, 3, resolveWorkers(3))
}

func TestResolveWorkersFallsBackToEnv(t *testing.T) {
	t.Setenv("DFVS_THREADS", "5")
	require.Equal(t, 5, resolveWorkers(-1))
}

func TestResolveWorkersDefaultsToAutoWhenEnvEmpty(t *testing.T) {
	t.Setenv("DFVS_THREADS", "")
	require.Equal(t, 0, resolveWorkers(-1))
}

func TestResolveDeadlineUsesModeDefaultWhenUnset(t *testing.T) {
	before := time.Now()
	d := resolveDeadline(0, 10*time.Second)
	require.True(t, d.After(before))
	require.True(t, d.Before(before.Add(11*time.Second)))
}

func TestResolveDeadlineHonorsExplicitFlag(t *testing.T) {
	before := time.Now()
	d := resolveDeadline(2*time.Second, 10*time.Second)
	require.True(t, d.Before(before.Add(3*time.Second)))
}

func TestSortedUniqueDedupsAndSorts(t *testing.T) {
	require.Equal(t, []int{1, 2, 3}, sortedUnique([]int{3, 1, 2, 1, 3}))
	require.Equal(t, []int{}, sortedUnique([]int{}))
}

func TestReconcileAddsAliasesForAbsentCanonical(t *testing.T) {
	merged := map[int][]int{5: {6, 7}}
	require.Equal(t, []int{1, 6, 7}, reconcile([]int{1}, merged))
	require.Equal(t, []int{1, 5}, reconcile([]int{1, 5}, merged))
}

// TestReconcileResolvesChainedMerges pins a two-level TWIN chain: round
// one merges vertex 5 into canonical 2 (a (2,5) 2-cycle), a later round
// then merges 2 itself into canonical 1 (a (1,2) 2-cycle). Per
// applyTwin's contract, excluding 1 forces 2 in to break (1,2) — and
// since 2 is then effectively present, (2,5) is already broken, so 5
// must NOT also be added. A flat single-pass reconciliation instead adds
// both 2 and 5 unconditionally (since 2 is never literally a member of
// s to begin with), producing a feasible but non-minimum result.
func TestReconcileResolvesChainedMerges(t *testing.T) {
	merged := map[int][]int{2: {5}, 1: {2}}
	require.Equal(t, []int{2}, reconcile(nil, merged))
	require.Equal(t, []int{2, 3}, reconcile([]int{3}, merged))
}

// TestReconcileAddsDeeperAliasWhenChosenRootSkipsIntermediate ensures
// the complementary case: choosing root 1 breaks (1,2), so 2 is not
// added — but 2 itself is then effectively absent, so its own alias 5
// must still be added to break (2,5).
func TestReconcileAddsDeeperAliasWhenChosenRootSkipsIntermediate(t *testing.T) {
	merged := map[int][]int{2: {5}, 1: {2}}
	require.Equal(t, []int{1, 5}, reconcile([]int{1}, merged))
}
