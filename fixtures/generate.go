package fixtures

import "math/rand"

// Amount and timestamp ranges for generated edges, matching
// original_source's synthetic.rs constants.
const (
	minAmount = 1_000
	maxAmount = 100_000

	minTimestamp = 1_600_000_000
	maxTimestamp = 1_700_000_000
)

// SyntheticEdge is a raw, not-yet-frozen edge: a candidate for
// store.GraphBuilder.AddEdge.
type SyntheticEdge struct {
	Src, Dst          uint32
	Amount, Timestamp uint64
}

// GeneratorConfig parameterizes Generate's uniform random edge stream.
type GeneratorConfig struct {
	NodeCount uint32
	EdgeCount uint64
	Seed      int64
}

// Generate returns a deterministic sequence of cfg.EdgeCount edges drawn
// uniformly over [0, cfg.NodeCount), seeded by cfg.Seed. Self-loops are
// avoided by incrementing a colliding destination modulo NodeCount, same
// as original_source's synthetic.rs.
func Generate(cfg GeneratorConfig) []SyntheticEdge {
	rng := rand.New(rand.NewSource(cfg.Seed))
	edges := make([]SyntheticEdge, 0, cfg.EdgeCount)

	for i := uint64(0); i < cfg.EdgeCount; i++ {
		src := uint32(rng.Int63n(int64(cfg.NodeCount)))
		dst := uint32(rng.Int63n(int64(cfg.NodeCount)))
		if dst == src {
			dst = (dst + 1) % cfg.NodeCount
		}

		edges = append(edges, SyntheticEdge{
			Src:       src,
			Dst:       dst,
			Amount:    uint64(rng.Int63n(maxAmount-minAmount)) + minAmount,
			Timestamp: uint64(rng.Int63n(maxTimestamp-minTimestamp)) + minTimestamp,
		})
	}

	return edges
}
