// Package metadata resolves the catalog-facing metadata for a media file:
// its size, a best-effort capture timestamp, and the wall-clock time the
// row is being written.
//
// Capture-time extraction is advisory, never authoritative. Every internal
// extraction failure (missing tag, corrupt container, unsupported format)
// degrades to the file's modification time; only a failed stat surfaces as
// an error.
package metadata
