// Package labelprop implements synchronous label propagation over a
// store.GraphStore: every node starts in its own label, and on each round
// adopts the majority label among its in- and out-neighbors, breaking ties
// toward the smaller label id. Propagation runs in lockstep across two
// label buffers so a round's updates never observe later updates from the
// same round, and halts early once a round produces no change.
//
// Grounded on original_source's label_propagation.rs, the linear-scan-tally
// variant (an earlier HashMap-based variant in the same original source is
// superseded and intentionally not reimplemented). The walker/queue-free
// single-pass-per-round structure borrows the Run/loop split used by the
// teacher's bfs.Walker, adapted from a single-start frontier traversal to a
// full-graph synchronous sweep.
package labelprop
