// Package catalog persists the media catalog in SQLite and exposes the
// lookups the scan and reorganization pipelines need.
//
// Rows are insert-only: a file's hash, path, size, and duplicate flag are
// fixed at insertion time and never revised. Path uniqueness is enforced by
// the pipeline's exists-check rather than a UNIQUE constraint, matching the
// skip-on-exists contract. The Store holds an exclusive lock file for its
// lifetime so concurrent runs against the same catalog fail fast instead of
// corrupting duplicate bookkeeping.
//
// Schema changes bump schemaVersion; a version mismatch is a fatal open
// error since no useful work can proceed against an unknown layout.
package catalog
