// Package store holds the frozen, doubly-indexed adjacency representation
// that every analysis in txgraph reads from.
//
// A GraphBuilder accepts edges in arbitrary arrival order; Freeze consumes
// the builder and compacts the edges into a compressed-sparse-row (CSR)
// layout with both a forward (outgoing) and a reverse (incoming) index.
// Once frozen, a GraphStore is immutable for the rest of its lifetime: no
// method on GraphStore mutates it, so a *GraphStore may be shared by
// reference across any number of read-only analyses without locking.
//
//	builder := store.NewBuilder(nodeCount)
//	builder.AddEdge(src, dst, amount, timestamp)
//	g := builder.Freeze()
//	for it := g.EdgesFrom(u); ; {
//		e, ok := it.Next()
//		if !ok {
//			break
//		}
//		_ = e
//	}
package store
