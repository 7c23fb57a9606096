// Package memstats estimates the in-memory footprint of an edge set before
// it is built into a store.GraphStore, for reporting by the CLI.
//
// Grounded on original_source's memory.rs (estimate_edge_memory).
package memstats
