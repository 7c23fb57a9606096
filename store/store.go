package store

// GraphStore is the frozen, bidirectional CSR adjacency representation
// described in spec.md §3. It is immutable for its entire lifetime: every
// method is a pure read, so a *GraphStore may be shared by reference across
// any number of concurrent read-only analyses — the core itself spawns no
// goroutines and takes no locks.
type GraphStore struct {
	nodeCount int

	// Outgoing-sorted edge arrays and their per-node offsets.
	dstOut       []NodeID
	amountOut    []uint64
	timestampOut []uint64
	offsetsOut   []int

	// Reverse index: same edges, grouped by destination.
	srcIn       []NodeID
	timestampIn []uint64
	offsetsIn   []int
}

// NodeCount returns N, the size of the node space.
func (g *GraphStore) NodeCount() int { return g.nodeCount }

// EdgeCount returns E, the total number of stored edges.
func (g *GraphStore) EdgeCount() int { return len(g.dstOut) }

// OutDegree returns the number of edges leaving u in O(1).
func (g *GraphStore) OutDegree(u NodeID) int {
	return g.offsetsOut[u+1] - g.offsetsOut[u]
}

// InDegree returns the number of edges arriving at v in O(1).
func (g *GraphStore) InDegree(v NodeID) int {
	return g.offsetsIn[v+1] - g.offsetsIn[v]
}

// OutgoingIter is a finite, non-restartable sequence over the outgoing edges
// of one node. It allocates nothing beyond itself: Next walks a half-open
// range already materialized in the store's CSR arrays.
type OutgoingIter struct {
	g        *GraphStore
	cur, end int
}

// Next returns the next outgoing edge and true, or a zero value and false
// once the sequence is exhausted. Calling Next again after exhaustion keeps
// returning false — the iterator does not restart.
func (it *OutgoingIter) Next() (OutgoingEdge, bool) {
	if it.cur >= it.end {
		return OutgoingEdge{}, false
	}
	e := OutgoingEdge{
		Dst:       it.g.dstOut[it.cur],
		Amount:    it.g.amountOut[it.cur],
		Timestamp: it.g.timestampOut[it.cur],
	}
	it.cur++
	return e, true
}

// Len reports the number of edges remaining, including the one the next
// call to Next would yield.
func (it *OutgoingIter) Len() int { return it.end - it.cur }

// EdgesFrom returns a sequence over the outgoing edges of u, in the order
// they were inserted before Freeze (spec.md §3 invariant 2).
func (g *GraphStore) EdgesFrom(u NodeID) *OutgoingIter {
	return &OutgoingIter{g: g, cur: g.offsetsOut[u], end: g.offsetsOut[u+1]}
}

// IncomingIter is a finite, non-restartable sequence over the incoming
// edges of one node.
type IncomingIter struct {
	g        *GraphStore
	cur, end int
}

// Next returns the next incoming edge and true, or a zero value and false
// once the sequence is exhausted.
func (it *IncomingIter) Next() (IncomingEdge, bool) {
	if it.cur >= it.end {
		return IncomingEdge{}, false
	}
	e := IncomingEdge{
		Src:       it.g.srcIn[it.cur],
		Timestamp: it.g.timestampIn[it.cur],
	}
	it.cur++
	return e, true
}

// Len reports the number of edges remaining, including the one the next
// call to Next would yield.
func (it *IncomingIter) Len() int { return it.end - it.cur }

// EdgesTo returns a sequence over the incoming edges of v, stabilized in
// insertion order per destination by the builder's reverse-index pass.
func (g *GraphStore) EdgesTo(v NodeID) *IncomingIter {
	return &IncomingIter{g: g, cur: g.offsetsIn[v], end: g.offsetsIn[v+1]}
}
