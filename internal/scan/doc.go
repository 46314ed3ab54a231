// Package scan runs the cataloging pipeline: discover media files under the
// requested roots, fingerprint each one, resolve its metadata, and insert a
// catalog row with the duplicate flag decided at insertion time.
//
// Duplicate detection is two-tier: a hash already present in the catalog
// marks cross-run duplicates, and a per-run seen set marks duplicates that
// arrive together in one batch. The seen set belongs to the Run invocation,
// so independent runs and tests never share state.
//
// Failures stay local: an unreadable or unparsable file is logged, counted,
// and skipped so a bulk scan keeps making progress.
package scan
