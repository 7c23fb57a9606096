// Package components assigns a dense weakly-connected-component id to every
// node in a frozen store.GraphStore.
//
// Two nodes share a cluster id iff a sequence of edges, ignoring direction,
// connects them. The algorithm is a union-find over the undirected
// projection of the edge relation: union-by-size keeps the tree shallow in
// the expected case, and full path compression (every node on the find
// path is re-parented directly to the root) keeps subsequent lookups near
// O(1) amortized. Dense ids are assigned by first-seen root while sweeping
// nodes 0..N, so the result is deterministic for a given store regardless
// of edge insertion order.
//
// Grounded on the union-find used by prim_kruskal.Kruskal in the teacher
// repository, adapted from a string-keyed map (core.Graph has string vertex
// ids) to flat uint32 arrays sized by the node count, since store.GraphStore
// uses dense NodeIDs throughout.
package components
