// Package main hosts the shoebox CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the scan and reorganize pipelines,
// catalog inspection, and configuration scaffolding. It centralizes
// configuration resolution, catalog access, and structured logging setup so
// subcommands can focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
