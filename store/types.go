package store

import "errors"

// NodeID is a dense, zero-based index into the node space [0, N) fixed at
// builder construction.
type NodeID = uint32

// Sentinel errors for programmer-error bounds violations. Per the package's
// error policy, these are never returned from data-dependent paths; they are
// reserved for misuse of the builder/store API and are surfaced via panic,
// not as Go errors, because the spec treats them as abort conditions rather
// than recoverable failures.
var (
	// ErrNodeOutOfRange indicates an edge endpoint passed to AddEdge was >= N.
	ErrNodeOutOfRange = errors.New("store: node id out of range")

	// ErrAlreadyFrozen indicates AddEdge was called after Freeze.
	ErrAlreadyFrozen = errors.New("store: builder already frozen")
)

// OutgoingEdge is the tuple yielded by EdgesFrom: the neighbor on the far
// side of an edge leaving the queried node, its amount, and its timestamp.
type OutgoingEdge struct {
	Dst       NodeID
	Amount    uint64
	Timestamp uint64
}

// IncomingEdge is the tuple yielded by EdgesTo: the neighbor on the near
// side of an edge arriving at the queried node, and its timestamp. Amount is
// deliberately omitted — no reverse-index consumer needs it (spec.md §3).
type IncomingEdge struct {
	Src       NodeID
	Timestamp uint64
}
