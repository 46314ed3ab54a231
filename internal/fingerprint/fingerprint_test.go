package fingerprint_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"shoebox/internal/fingerprint"
)

func TestFileMatchesDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.bin")
	content := []byte("the quick brown fox jumps over the lazy dog")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fingerprint.File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}

	sum := sha256.Sum256(content)
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("digest mismatch: got %s, want %s", got, want)
	}
}

func TestFileSpansChunkBoundaries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "large.bin")
	// Not a multiple of the 4096-byte chunk size, so the final read is short.
	content := bytes.Repeat([]byte{0xAB}, 4096*3+517)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := fingerprint.File(path)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}

	sum := sha256.Sum256(content)
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("digest mismatch: got %s, want %s", got, want)
	}
}

func TestFileStableAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stable.bin")
	if err := os.WriteFile(path, []byte("unchanged"), 0o644); err != nil {
		t.Fatal(err)
	}

	first, err := fingerprint.File(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := fingerprint.File(path)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("fingerprint changed across calls: %s vs %s", first, second)
	}
}

func TestFileMissing(t *testing.T) {
	if _, err := fingerprint.File(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
