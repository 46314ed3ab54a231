// Package logging constructs the slog loggers used across shoebox and
// re-exports the attribute helpers components attach to their records.
//
// Runs append to a human-readable log file under the configured log
// directory in addition to stdout; the log is diagnostic output, not a
// machine-readable contract.
package logging
