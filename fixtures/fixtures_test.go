package fixtures_test

import (
	"testing"

	"github.com/ledgerlens/txgraph/fixtures"
	"github.com/ledgerlens/txgraph/mixer"
	"github.com/ledgerlens/txgraph/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	cfg := fixtures.GeneratorConfig{NodeCount: 100, EdgeCount: 50, Seed: 42}

	a := fixtures.Generate(cfg)
	b := fixtures.Generate(cfg)
	assert.Equal(t, a, b)
}

func TestGenerate_NoSelfLoops(t *testing.T) {
	edges := fixtures.Generate(fixtures.GeneratorConfig{NodeCount: 5, EdgeCount: 200, Seed: 7})
	for _, e := range edges {
		assert.NotEqual(t, e.Src, e.Dst)
	}
}

func TestGenerate_RangesRespected(t *testing.T) {
	edges := fixtures.Generate(fixtures.GeneratorConfig{NodeCount: 10, EdgeCount: 500, Seed: 1})
	for _, e := range edges {
		assert.Less(t, e.Src, uint32(10))
		assert.Less(t, e.Dst, uint32(10))
		assert.GreaterOrEqual(t, e.Amount, uint64(1_000))
		assert.Less(t, e.Amount, uint64(100_000))
		assert.GreaterOrEqual(t, e.Timestamp, uint64(1_600_000_000))
		assert.Less(t, e.Timestamp, uint64(1_700_000_000))
	}
}

func TestStar_HubDegreeMatchesLeafCount(t *testing.T) {
	g := fixtures.Star(6)

	assert.Equal(t, 5, g.OutDegree(0))
	assert.Equal(t, 5, g.InDegree(0))
	for i := store.NodeID(1); i < 6; i++ {
		assert.Equal(t, 1, g.OutDegree(i))
		assert.Equal(t, 1, g.InDegree(i))
	}
}

func TestNormalUser_DegreeStaysBelowThreshold(t *testing.T) {
	cfg := mixer.NewConfig(mixer.WithDegreeThreshold(10), mixer.WithWindowSecs(3600))
	g := fixtures.NormalUser(cfg)

	require.Less(t, g.InDegree(0), cfg.DegreeThreshold)
	require.Less(t, g.OutDegree(0), cfg.DegreeThreshold)

	labels := make([]uint32, g.NodeCount())
	signals := mixer.Detect(g, labels, cfg)
	assert.False(t, signals[0].IsMixer)
}

func TestBridgeNode_DegreeEarnedButDiversityDoesNot(t *testing.T) {
	cfg := mixer.NewConfig(mixer.WithDegreeThreshold(5), mixer.WithDiversityThreshold(3))
	g := fixtures.BridgeNode(cfg)

	require.GreaterOrEqual(t, g.InDegree(0), cfg.DegreeThreshold)
	require.GreaterOrEqual(t, g.OutDegree(0), cfg.DegreeThreshold)

	labels := make([]uint32, g.NodeCount())
	side := cfg.DegreeThreshold
	for i := 1; i <= side; i++ {
		labels[i] = 1
	}
	for i := side + 1; i < g.NodeCount(); i++ {
		labels[i] = 2
	}

	signals := mixer.Detect(g, labels, cfg)
	assert.Equal(t, 2, signals[0].Score)
	assert.False(t, signals[0].IsMixer)
}

func TestExchangeHub_DegreeAndDiversityEarnedNoOverlap(t *testing.T) {
	cfg := mixer.NewConfig(mixer.WithDegreeThreshold(4), mixer.WithDiversityThreshold(3), mixer.WithWindowSecs(10))
	g := fixtures.ExchangeHub(cfg)

	require.GreaterOrEqual(t, g.InDegree(0), cfg.DegreeThreshold)
	require.GreaterOrEqual(t, g.OutDegree(0), cfg.DegreeThreshold)

	labels := make([]uint32, g.NodeCount())
	for i := range labels {
		labels[i] = uint32(i)
	}
	signals := mixer.Detect(g, labels, cfg)
	assert.Equal(t, 3, signals[0].Score)
	assert.True(t, signals[0].IsMixer)
}

func TestStrongMixer_EarnsFullComposite(t *testing.T) {
	cfg := mixer.NewConfig(mixer.WithDegreeThreshold(4), mixer.WithDiversityThreshold(3), mixer.WithWindowSecs(1000))
	g := fixtures.StrongMixer(cfg)

	require.GreaterOrEqual(t, g.InDegree(0), cfg.DegreeThreshold)
	require.GreaterOrEqual(t, g.OutDegree(0), cfg.DegreeThreshold)

	labels := make([]uint32, g.NodeCount())
	perGroup := cfg.DegreeThreshold/3 + 1
	node := 1
	for group := 0; group < 3; group++ {
		for i := 0; i < perGroup*2; i++ {
			labels[node] = uint32(group + 1)
			node++
		}
	}

	signals := mixer.Detect(g, labels, cfg)
	assert.Equal(t, 4, signals[0].Score)
	assert.True(t, signals[0].IsMixer)
}

func TestByName_UnknownFixtureErrors(t *testing.T) {
	_, err := fixtures.ByName("not_a_real_fixture", mixer.NewConfig())
	assert.Error(t, err)
}

func TestByName_KnownFixturesResolve(t *testing.T) {
	for _, name := range []string{"star", "normal_user", "bridge_node", "exchange_hub", "strong_mixer"} {
		g, err := fixtures.ByName(name, mixer.NewConfig())
		require.NoError(t, err)
		assert.Positive(t, g.NodeCount())
	}
}
