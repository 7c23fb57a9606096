package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ledgerlens/txgraph/registry"
	"github.com/ledgerlens/txgraph/store"
)

// fieldsPerRecord is the exact arity of a valid edge record: src, dst,
// amount, timestamp.
const fieldsPerRecord = 4

// Stats reports how many records were successfully parsed and added to
// the builder, versus skipped for malformed content.
type Stats struct {
	Parsed  uint64
	Skipped uint64
}

// validRecord is a parsed, well-formed edge record, held in memory only
// long enough to size a store.GraphBuilder before edges are added to it.
type validRecord struct {
	src, dst          string
	amount, timestamp uint64
}

// CSV reads 4-field edge records from r, resolving external ids through
// reg. A record is skipped (counted, not surfaced) when it has the wrong
// field count or either numeric field fails to parse. An I/O error from r
// is surfaced and terminates ingest immediately.
//
// store.GraphBuilder is fixed-size at construction, but the final node
// count is only known once every external id has been seen, so CSV reads
// the whole record set before building: it validates fields in one pass,
// registers the external ids of the valid records in a second, and adds
// their edges to a single correctly-sized GraphBuilder in a third. This
// differs from
// original_source's csv.rs, which ingests into a builder supplied
// pre-sized by the caller; Go's CLI entry point has no such upfront size
// to offer, so the package takes on the sizing responsibility itself.
func CSV(r io.Reader, reg *registry.Registry) (*store.GraphBuilder, Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // validate arity ourselves, so we can skip instead of abort

	var stats Stats
	var records []validRecord
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("ingest: reading record: %w", err)
		}
		if len(record) != fieldsPerRecord {
			stats.Skipped++
			continue
		}

		amount, err := strconv.ParseUint(record[2], 10, 64)
		if err != nil {
			stats.Skipped++
			continue
		}
		timestamp, err := strconv.ParseUint(record[3], 10, 64)
		if err != nil {
			stats.Skipped++
			continue
		}

		records = append(records, validRecord{record[0], record[1], amount, timestamp})
		stats.Parsed++
	}

	for _, rec := range records {
		if _, err := reg.GetOrInsert(rec.src); err != nil {
			return nil, stats, fmt.Errorf("ingest: registering %q: %w", rec.src, err)
		}
		if _, err := reg.GetOrInsert(rec.dst); err != nil {
			return nil, stats, fmt.Errorf("ingest: registering %q: %w", rec.dst, err)
		}
	}

	builder := store.NewBuilder(reg.Len())
	for _, rec := range records {
		src, _ := reg.Lookup(rec.src)
		dst, _ := reg.Lookup(rec.dst)
		builder.AddEdge(src, dst, rec.amount, rec.timestamp)
	}

	return builder, stats, nil
}
