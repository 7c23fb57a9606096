// Package ingest reads 4-field edge records (external source id, external
// destination id, amount, timestamp) from a CSV stream and feeds them into
// a store.GraphBuilder via a registry.Registry, tracking how many records
// parsed versus were skipped.
//
// Grounded on original_source's csv.rs (ingest_csv): malformed numeric
// fields or wrong field counts are counted as skipped rather than
// aborting the whole ingest; an error from the CSV reader (an I/O error, or
// a syntax error such as a stray quote) or a registry overflow terminates
// early. No third-party CSV library appears anywhere in the
// example pack, so this package uses the standard library's encoding/csv;
// see the module's grounding ledger for the full justification.
package ingest
