package components

import "github.com/ledgerlens/txgraph/store"

// disjointSet is a union-find over node indices [0, size), using union by
// size and full path compression.
type disjointSet struct {
	parent []store.NodeID
	size   []uint32
}

func newDisjointSet(size int) *disjointSet {
	parent := make([]store.NodeID, size)
	for i := range parent {
		parent[i] = store.NodeID(i)
	}
	return &disjointSet{parent: parent, size: make([]uint32, size)}
}

// find returns the root of u, fully compressing the path traversed.
func (d *disjointSet) find(u store.NodeID) store.NodeID {
	root := u
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[u] != root {
		d.parent[u], u = root, d.parent[u]
	}
	return root
}

// union merges the sets containing u and v, attaching the smaller tree
// under the root of the larger one.
func (d *disjointSet) union(u, v store.NodeID) {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return
	}
	if d.size[ru] < d.size[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	d.size[ru] += d.size[rv] + 1
}

// Find computes a cluster id per node: cluster_id[u] == cluster_id[v] iff u
// and v are weakly connected. Isolated nodes each receive a unique id, and
// ids are dense in [0, K) where K is the number of distinct components.
//
// Every stored edge is treated as undirected; unioning over each node's
// outgoing edges alone suffices, since every directed edge is visited
// exactly once from its source. Runs in O(N + E) amortized time.
func Find(g *store.GraphStore) []uint32 {
	n := g.NodeCount()
	dsu := newDisjointSet(n)

	for u := store.NodeID(0); u < store.NodeID(n); u++ {
		it := g.EdgesFrom(u)
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			dsu.union(u, e.Dst)
		}
	}

	clusterOf := make(map[store.NodeID]uint32, n)
	clusterID := make([]uint32, n)
	for u := store.NodeID(0); u < store.NodeID(n); u++ {
		root := dsu.find(u)
		id, seen := clusterOf[root]
		if !seen {
			id = uint32(len(clusterOf))
			clusterOf[root] = id
		}
		clusterID[u] = id
	}

	return clusterID
}
