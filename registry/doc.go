// Package registry assigns dense store.NodeID values to opaque external
// identifiers (addresses, account numbers, anything string-shaped), in
// first-seen order starting at 0. Re-looking up an id already seen returns
// the same NodeID.
//
// Grounded on original_source's ids.rs (NodeRegistry). The Rust version
// panics on overflow of the node space; this package reports the same
// condition as an error instead, since the registry sits at the ingest
// boundary and overflow is something an external, untrusted record stream
// can actually trigger — unlike store's bounds checks, which guard against
// programmer misuse of an already-validated id space and stay panics.
package registry
