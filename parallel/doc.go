// Package parallel implements the driver for Component G: after the root
// graph has been reduced and split into strongly-connected components,
// each nontrivial SCC is an independent DFVS subproblem (no cycle spans
// two distinct SCCs), so they are dispatched to a fixed-size worker pool
// and solved concurrently.
//
// Each worker owns its subgraph exclusively — dfvsgraph.Graph is never
// shared across goroutines — and results are merged through a single
// mutex-protected collector, mirroring the teacher's sync.WaitGroup
// fan-out/fan-in style (core/concurrency_test.go) rather than anything
// channel-pipeline-shaped.
package parallel
