package mixer

import (
	"sort"

	"github.com/ledgerlens/txgraph/store"
)

// DegreeStats holds a node's in- and out-degree.
type DegreeStats struct {
	InDegree  int
	OutDegree int
}

// Signal is the composite scoring result for a single node.
type Signal struct {
	Node    store.NodeID
	Score   int
	IsMixer bool
}

// computeDegreeStats returns (in_degree(u), out_degree(u)) for every node,
// each O(1) from the store's offsets.
func computeDegreeStats(g *store.GraphStore) []DegreeStats {
	n := g.NodeCount()
	stats := make([]DegreeStats, n)
	for u := store.NodeID(0); int(u) < n; u++ {
		stats[u] = DegreeStats{InDegree: g.InDegree(u), OutDegree: g.OutDegree(u)}
	}
	return stats
}

// computeLabelDiversity counts, for every node, the number of distinct
// labels among the union of its incoming and outgoing neighbors. Uses an
// O(N) scratch "last-seen" buffer instead of a per-node set: buf[label]
// holds the most recent node index (1-based) that has already counted
// that label, so a label is only counted once per node regardless of how
// many neighbors carry it.
func computeLabelDiversity(g *store.GraphStore, labels []uint32) []int {
	n := g.NodeCount()
	counts := make([]int, n)
	buf := make([]int, n)

	for u := 0; u < n; u++ {
		observe := func(neighbor store.NodeID) {
			label := labels[neighbor]
			if buf[label] < u+1 {
				counts[u]++
				buf[label] = u + 1
			}
		}

		out := g.EdgesFrom(store.NodeID(u))
		for {
			e, ok := out.Next()
			if !ok {
				break
			}
			observe(e.Dst)
		}
		in := g.EdgesTo(store.NodeID(u))
		for {
			e, ok := in.Next()
			if !ok {
				break
			}
			observe(e.Src)
		}
	}

	return counts
}

// hasInOutOverlap reports whether u has an incoming edge and an outgoing
// edge whose timestamps lie within windowSecs of each other. Both
// timestamp sequences are sorted, then scanned with a two-pointer
// technique: the outgoing cursor only ever advances, since every outgoing
// timestamp it skips lies more than windowSecs before the current incoming
// timestamp, and so lies too far before every later (larger) incoming
// timestamp too.
func hasInOutOverlap(g *store.GraphStore, u store.NodeID, windowSecs uint64) bool {
	var inTimes, outTimes []uint64

	in := g.EdgesTo(u)
	for {
		e, ok := in.Next()
		if !ok {
			break
		}
		inTimes = append(inTimes, e.Timestamp)
	}
	out := g.EdgesFrom(u)
	for {
		e, ok := out.Next()
		if !ok {
			break
		}
		outTimes = append(outTimes, e.Timestamp)
	}
	if len(inTimes) == 0 || len(outTimes) == 0 {
		return false
	}

	sort.Slice(inTimes, func(i, j int) bool { return inTimes[i] < inTimes[j] })
	sort.Slice(outTimes, func(i, j int) bool { return outTimes[i] < outTimes[j] })

	from := 0
	for i := 0; i < len(inTimes); i++ {
		for j := from; j < len(outTimes); j++ {
			if absDiff(outTimes[j], inTimes[i]) <= windowSecs {
				return true
			}
			if outTimes[j] > inTimes[i]+windowSecs {
				from = j
				break
			}
		}
	}
	return false
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// Detect runs the full mixer-detection pipeline over g, using labels
// (typically from labelprop.Run) as each node's community id, and returns
// one Signal per node in node order.
func Detect(g *store.GraphStore, labels []uint32, cfg Config) []Signal {
	degrees := computeDegreeStats(g)
	diversity := computeLabelDiversity(g, labels)

	n := g.NodeCount()
	signals := make([]Signal, n)
	for u := 0; u < n; u++ {
		score := 0
		if degrees[u].InDegree >= cfg.DegreeThreshold {
			score++
		}
		if degrees[u].OutDegree >= cfg.DegreeThreshold {
			score++
		}
		if hasInOutOverlap(g, store.NodeID(u), cfg.WindowSecs) {
			score++
		}
		if diversity[u] >= cfg.DiversityThreshold {
			score++
		}
		signals[u] = Signal{Node: store.NodeID(u), Score: score, IsMixer: score >= 3}
	}
	return signals
}
