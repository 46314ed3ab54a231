// Package testsupport provides builders shared by package tests: configs
// seeded with per-test temp directories, catalog stores with managed
// cleanup, and fixture file writers.
package testsupport

import (
	"path/filepath"
	"testing"

	"shoebox/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.Roots = nil
	cfg.Paths.CatalogPath = filepath.Join(base, "catalog.db")
	cfg.Paths.LibraryDir = filepath.Join(base, "library")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}
