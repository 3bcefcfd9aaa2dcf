// Package lowerbound computes dual lower bounds on the minimum feedback
// vertex set size, used by branch-and-bound to prune nodes whose bound
// cannot beat the current best incumbent.
//
// Pack greedily packs vertex-disjoint short cycles (an integral packing:
// each disjoint cycle forces a distinct vertex into any solution). LP
// generalizes it to a fractional packing over possibly-overlapping short
// cycles via a primal-dual bottleneck-saturation scheme, which can exceed
// Pack's bound when cycles overlap but does not always do so (three
// pairwise 2-cycles on three vertices give 1 for both). Combined returns
// max(Pack, LP).
package lowerbound
