package ingest_test

import (
	"strings"
	"testing"

	"github.com/ledgerlens/txgraph/ingest"
	"github.com/ledgerlens/txgraph/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV_ParsesWellFormedRecords(t *testing.T) {
	input := "alice,bob,100,1600000000\nbob,carol,200,1600000100\n"
	reg := registry.New()

	builder, stats, err := ingest.CSV(strings.NewReader(input), reg)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.Parsed)
	assert.Equal(t, uint64(0), stats.Skipped)

	g := builder.Freeze()
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 3, g.NodeCount())
}

func TestCSV_SkipsWrongArityWithoutAborting(t *testing.T) {
	input := "alice,bob,100,1600000000\nonlytwo,fields\ncarol,dave,50,1600000200\n"
	reg := registry.New()

	builder, stats, err := ingest.CSV(strings.NewReader(input), reg)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.Parsed)
	assert.Equal(t, uint64(1), stats.Skipped)

	g := builder.Freeze()
	assert.Equal(t, 2, g.EdgeCount())
}

func TestCSV_SkipsBadNumerics(t *testing.T) {
	input := "alice,bob,notanumber,1600000000\nalice,bob,100,notatimestamp\nalice,bob,100,1600000000\n"
	reg := registry.New()

	_, stats, err := ingest.CSV(strings.NewReader(input), reg)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.Parsed)
	assert.Equal(t, uint64(2), stats.Skipped)
}

func TestCSV_RepeatedExternalIDsReuseNodeID(t *testing.T) {
	input := "alice,bob,1,1\nalice,carol,2,2\n"
	reg := registry.New()

	builder, _, err := ingest.CSV(strings.NewReader(input), reg)
	require.NoError(t, err)

	g := builder.Freeze()
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.OutDegree(0)) // alice is node 0, first seen
}

func TestCSV_EmptyInput(t *testing.T) {
	reg := registry.New()

	builder, stats, err := ingest.CSV(strings.NewReader(""), reg)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), stats.Parsed)
	assert.Equal(t, uint64(0), stats.Skipped)

	g := builder.Freeze()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}
