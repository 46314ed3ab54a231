package metadata_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"shoebox/internal/media"
	"shoebox/internal/metadata"
)

func TestResolveFallsBackToModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.jpg")
	if err := os.WriteFile(path, []byte("not really a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	modTime := time.Date(2019, 7, 14, 10, 30, 0, 0, time.UTC)
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatal(err)
	}

	resolver := metadata.NewResolver(nil)
	info, err := resolver.Resolve(path, media.KindImage)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if !info.DateTaken.Equal(modTime) {
		t.Fatalf("DateTaken = %v, want mod time %v", info.DateTaken, modTime)
	}
	if info.Size != int64(len("not really a jpeg")) {
		t.Fatalf("Size = %d, want %d", info.Size, len("not really a jpeg"))
	}
	if info.DateSaved.IsZero() {
		t.Fatal("DateSaved not stamped")
	}
}

func TestResolveMissingFile(t *testing.T) {
	resolver := metadata.NewResolver(nil)
	if _, err := resolver.Resolve(filepath.Join(t.TempDir(), "gone.jpg"), media.KindImage); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCaptureTimeUnknownKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("text"), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := metadata.NewResolver(nil)
	if _, ok := resolver.CaptureTime(path, media.KindNone); ok {
		t.Fatal("expected no capture time for unrecognized kind")
	}
}

func TestCaptureTimeCorruptImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.jpg")
	if err := os.WriteFile(path, []byte{0xFF, 0xD8, 0x00, 0x01}, 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := metadata.NewResolver(nil)
	if _, ok := resolver.CaptureTime(path, media.KindImage); ok {
		t.Fatal("expected extraction failure to report not-found")
	}
}

func TestCaptureTimeFromMvhd(t *testing.T) {
	want := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "clip.mp4")
	if err := os.WriteFile(path, buildMP4(t, want), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := metadata.NewResolver(nil)
	got, ok := resolver.CaptureTime(path, media.KindVideo)
	if !ok {
		t.Fatal("expected capture time from mvhd box")
	}
	if !got.Equal(want) {
		t.Fatalf("capture time = %v, want %v", got, want)
	}
}

func TestCaptureTimeTruncatedVideo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stub.mp4")
	if err := os.WriteFile(path, []byte{0x00, 0x00}, 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := metadata.NewResolver(nil)
	if _, ok := resolver.CaptureTime(path, media.KindVideo); ok {
		t.Fatal("expected no capture time for truncated container")
	}
}

func TestCaptureTimeUnsupportedContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tape.avi")
	if err := os.WriteFile(path, []byte("RIFF....AVI "), 0o644); err != nil {
		t.Fatal(err)
	}

	resolver := metadata.NewResolver(nil)
	if _, ok := resolver.CaptureTime(path, media.KindVideo); ok {
		t.Fatal("expected no capture time for unsupported container")
	}
}

// buildMP4 assembles a minimal ISO base media file: an ftyp box followed by
// a moov box containing a version-0 mvhd with the given creation time.
func buildMP4(t *testing.T, creation time.Time) []byte {
	t.Helper()

	const quicktimeEpochOffset = 2082844800
	seconds := uint32(creation.Unix() + quicktimeEpochOffset)

	ftyp := make([]byte, 16)
	binary.BigEndian.PutUint32(ftyp[0:4], 16)
	copy(ftyp[4:8], "ftyp")
	copy(ftyp[8:12], "isom")

	// mvhd payload: version+flags, creation, modification, timescale, duration.
	mvhd := make([]byte, 8+4+4+4+4+4)
	binary.BigEndian.PutUint32(mvhd[0:4], uint32(len(mvhd)))
	copy(mvhd[4:8], "mvhd")
	binary.BigEndian.PutUint32(mvhd[12:16], seconds)
	binary.BigEndian.PutUint32(mvhd[16:20], seconds)

	moov := make([]byte, 8, 8+len(mvhd))
	binary.BigEndian.PutUint32(moov[0:4], uint32(8+len(mvhd)))
	copy(moov[4:8], "moov")
	moov = append(moov, mvhd...)

	return append(ftyp, moov...)
}
