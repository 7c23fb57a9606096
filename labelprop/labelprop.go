package labelprop

import "github.com/ledgerlens/txgraph/store"

// tally accumulates neighbor label counts for a single node using a linear
// scan instead of a map: real transaction graphs have low average degree,
// so a short slice scan beats map overhead and avoids incidental ordering
// from map iteration, which would make tie-breaking nondeterministic.
type tally struct {
	labels []uint32
	counts []int
}

func (t *tally) reset() {
	t.labels = t.labels[:0]
	t.counts = t.counts[:0]
}

func (t *tally) add(label uint32) {
	for i, l := range t.labels {
		if l == label {
			t.counts[i]++
			return
		}
	}
	t.labels = append(t.labels, label)
	t.counts = append(t.counts, 1)
}

// majority returns the label with the highest count, breaking ties toward
// the smaller label id. ok is false if no labels were tallied.
func (t *tally) majority() (label uint32, ok bool) {
	if len(t.labels) == 0 {
		return 0, false
	}
	best := 0
	for i := 1; i < len(t.labels); i++ {
		if t.counts[i] > t.counts[best] || (t.counts[i] == t.counts[best] && t.labels[i] < t.labels[best]) {
			best = i
		}
	}
	return t.labels[best], true
}

// Run propagates labels over g for at most maxIters rounds, returning one
// label per node. Labels start as each node's own index, so a node that
// never changes keeps its own id. Each round computes every node's next
// label from the current round's labels only (synchronous, double-buffered)
// and stops early once a round leaves every label unchanged.
func Run(g *store.GraphStore, maxIters int) []uint32 {
	n := g.NodeCount()
	labels := make([]uint32, n)
	for i := range labels {
		labels[i] = uint32(i)
	}
	next := make([]uint32, n)

	var t tally
	for iter := 0; iter < maxIters; iter++ {
		changed := false
		for src := store.NodeID(0); int(src) < n; src++ {
			t.reset()

			outIt := g.EdgesFrom(src)
			for {
				e, ok := outIt.Next()
				if !ok {
					break
				}
				t.add(labels[e.Dst])
			}
			inIt := g.EdgesTo(src)
			for {
				e, ok := inIt.Next()
				if !ok {
					break
				}
				t.add(labels[e.Src])
			}

			newLabel, ok := t.majority()
			if !ok {
				newLabel = labels[src]
			}
			next[src] = newLabel
			if newLabel != labels[src] {
				changed = true
			}
		}

		labels, next = next, labels
		if !changed {
			break
		}
	}

	return labels
}
