package taint

import "github.com/ledgerlens/txgraph/store"

const (
	// InitialRisk is the score assigned to the seed node.
	InitialRisk = 1.0
	// Decay is the per-hop geometric decay factor applied before an
	// edge's proportional and time-gap discounts.
	Decay = 0.5
	// Epsilon is the minimum risk worth propagating further; anything
	// below it is dropped instead of requeued.
	Epsilon = 1e-6

	secondsPerDay = 60 * 60 * 24
)

type queueItem struct {
	node      store.NodeID
	risk      float64
	hop       int
	lastTS    uint64
	hasLastTS bool
}

// Propagate diffuses risk outward from start across g's outgoing edges, up
// to maxHops hops, and returns every node reached along with its highest
// observed risk score. start is always present in the result at
// InitialRisk, even when maxHops is 0.
func Propagate(g *store.GraphStore, start store.NodeID, maxHops int) map[store.NodeID]float64 {
	riskOf := map[store.NodeID]float64{start: InitialRisk}
	queue := []queueItem{{node: start, risk: InitialRisk, hop: 0}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		newRisk := item.risk * Decay
		if item.hop == maxHops {
			continue
		}

		totalAmount := uint64(0)
		it := g.EdgesFrom(item.node)
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			totalAmount += e.Amount
		}
		if totalAmount == 0 {
			continue
		}

		it = g.EdgesFrom(item.node)
		for {
			e, ok := it.Next()
			if !ok {
				break
			}
			edgeRisk := newRisk * (float64(e.Amount) / float64(totalAmount))
			if item.hasLastTS {
				dt := e.Timestamp - item.lastTS
				if e.Timestamp < item.lastTS {
					dt = 0
				}
				edgeRisk *= 1.0 / ((1.0 + float64(dt)) / secondsPerDay)
			}

			if edgeRisk < Epsilon {
				continue
			}
			// The seed keeps InitialRisk; a path back to it is not followed.
			if e.Dst == start {
				continue
			}
			if existing, ok := riskOf[e.Dst]; ok && edgeRisk <= existing {
				continue
			}
			riskOf[e.Dst] = edgeRisk
			queue = append(queue, queueItem{
				node:      e.Dst,
				risk:      edgeRisk,
				hop:       item.hop + 1,
				lastTS:    e.Timestamp,
				hasLastTS: true,
			})
		}
	}

	return riskOf
}
