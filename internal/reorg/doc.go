// Package reorg relocates cataloged files into the library's
// <kind>/<year> layout, reading the catalog in insertion order as the
// source of truth.
//
// A per-run relocated map keyed by content hash guarantees at most one
// physical move per distinct hash: later rows sharing a hash are skipped,
// leaving their files untouched. Entries whose recorded path no longer
// classifies to a media kind, or whose move fails, are logged and skipped;
// the files stay where the catalog last saw them so a future run can retry.
package reorg
