package fixtures

import (
	"github.com/ledgerlens/txgraph/mixer"
	"github.com/ledgerlens/txgraph/store"
)

// Star builds a hub-and-spoke graph with n nodes: node 0 is the hub, nodes
// 1..n-1 are leaves. Every spoke is bidirectional, mirroring
// builder.Star's directed-graph symmetry in the teacher repository.
// Requires n >= 2.
func Star(n int) *store.GraphStore {
	b := store.NewBuilder(n)
	for i := 1; i < n; i++ {
		ts := uint64(minTimestamp + i)
		b.AddEdge(0, store.NodeID(i), minAmount, ts)
		b.AddEdge(store.NodeID(i), 0, minAmount, ts)
	}
	return b.Freeze()
}

// NormalUser builds a hub with cfg.DegreeThreshold-1 distinct inbound
// counterparties and the same number of distinct outbound counterparties,
// so both degree points stay unearned. Inbound and outbound timestamps are
// separated by many multiples of cfg.WindowSecs, so no in/out overlap
// point is earned either.
func NormalUser(cfg mixer.Config) *store.GraphStore {
	peers := cfg.DegreeThreshold - 1
	if peers < 1 {
		peers = 1
	}
	n := 1 + 2*peers
	b := store.NewBuilder(n)

	gap := cfg.WindowSecs*10 + 1
	for i := 0; i < peers; i++ {
		in := store.NodeID(1 + i)
		b.AddEdge(in, 0, minAmount, minTimestamp+uint64(i))
	}
	for i := 0; i < peers; i++ {
		out := store.NodeID(1 + peers + i)
		b.AddEdge(0, out, minAmount, minTimestamp+gap+uint64(i))
	}
	return b.Freeze()
}

// BridgeNode connects two groups of cfg.DegreeThreshold peer nodes each
// through a single bridge node (node 0): the bridge sends to every peer in
// the first group and receives from every peer in the second, earning both
// degree points. Peers have no edges among themselves. When each group
// carries a single label, only two distinct neighbor labels are in play, so
// the diversity point stays unearned whenever cfg.DiversityThreshold > 2.
func BridgeNode(cfg mixer.Config) *store.GraphStore {
	side := cfg.DegreeThreshold
	if side < 1 {
		side = 1
	}
	n := 1 + 2*side
	b := store.NewBuilder(n)

	for i := 0; i < side; i++ {
		leftPeer := store.NodeID(1 + i)
		b.AddEdge(0, leftPeer, minAmount, minTimestamp+uint64(i))
	}
	for i := 0; i < side; i++ {
		rightPeer := store.NodeID(1 + side + i)
		b.AddEdge(rightPeer, 0, minAmount, minTimestamp+cfg.WindowSecs*10+uint64(i))
	}
	return b.Freeze()
}

// ExchangeHub builds a node with high in- and out-degree (earning both
// degree points) spread across many distinct counterparties (earning the
// diversity point once paired with distinct labels), but with every
// inbound timestamp separated from every outbound timestamp by more than
// cfg.WindowSecs, so the overlap point is never earned.
func ExchangeHub(cfg mixer.Config) *store.GraphStore {
	side := cfg.DegreeThreshold + 1
	n := 1 + 2*side
	b := store.NewBuilder(n)

	for i := 0; i < side; i++ {
		in := store.NodeID(1 + i)
		b.AddEdge(in, 0, minAmount, minTimestamp+uint64(i))
	}
	outBase := minTimestamp + cfg.WindowSecs*100
	for i := 0; i < side; i++ {
		out := store.NodeID(1 + side + i)
		b.AddEdge(0, out, minAmount, outBase+uint64(i))
	}
	return b.Freeze()
}

// StrongMixer builds three distinct counterparty groups that each send to
// and receive from node 0 within cfg.WindowSecs/2 of each other, so every
// scoring signal is earned: high in/out degree, neighbor label diversity
// across the three groups, and in/out timestamp overlap.
func StrongMixer(cfg mixer.Config) *store.GraphStore {
	const groups = 3
	perGroup := cfg.DegreeThreshold/groups + 1
	n := 1 + groups*perGroup*2
	b := store.NewBuilder(n)

	half := cfg.WindowSecs / 2
	if half == 0 {
		half = 1
	}

	next := store.NodeID(1)
	base := uint64(minTimestamp)
	for g := 0; g < groups; g++ {
		for i := 0; i < perGroup; i++ {
			in := next
			next++
			ts := base + uint64(g)*1_000_000
			b.AddEdge(in, 0, minAmount, ts)
		}
		for i := 0; i < perGroup; i++ {
			out := next
			next++
			ts := base + uint64(g)*1_000_000 + half/2
			b.AddEdge(0, out, minAmount, ts)
		}
	}
	return b.Freeze()
}
