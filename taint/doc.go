// Package taint diffuses a risk score outward from a seed node across a
// store.GraphStore, following outgoing edges breadth-first.
//
// Risk decays geometrically with each hop, splits across an edge in
// proportion to the edge's amount relative to its source's total outgoing
// amount, and is further discounted the longer the gap since the risk last
// moved (so a chain of transfers separated by months carries less taint
// than one executed within a day). A destination only requeues when the
// newly arriving risk exceeds what it already holds, and risk below a
// fixed epsilon is dropped rather than queued, which bounds the traversal
// on graphs with long tails of decreasing relevance.
//
// Grounded on original_source's taint.rs; the BFS frontier/queue structure
// follows the teacher's bfs.walker (queue of pending work, processed FIFO,
// each item's neighbors conditionally requeued), adapted from unweighted
// single-pass visitation to weighted, revisitable diffusion.
package taint
