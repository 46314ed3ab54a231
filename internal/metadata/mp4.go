package metadata

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// quicktimeEpochOffset is the number of seconds between the QuickTime epoch
// (1904-01-01) and the Unix epoch.
const quicktimeEpochOffset = 2082844800

var errNoCreationTime = errors.New("no creation time in container metadata")

// videoCaptureTime reads container-level creation metadata from a video
// file. Only the ISO base media family (MP4/MOV/M4V) is supported; other
// containers report no capture time and fall back upstream.
func videoCaptureTime(path string) (time.Time, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".mov", ".m4v":
		return mvhdCreationTime(path)
	}
	return time.Time{}, fmt.Errorf("no capture time reader for %s containers", filepath.Ext(path))
}

// mvhdCreationTime locates the moov/mvhd box and decodes its creation_time
// field. QuickTime stores seconds since 1904; zero or pre-Unix-epoch values
// are treated as absent since cameras frequently leave the field blank.
func mvhdCreationTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return time.Time{}, err
	}
	fileSize := info.Size()

	moovStart, moovSize, err := findBox(f, 0, fileSize, "moov")
	if err != nil {
		return time.Time{}, err
	}

	mvhdStart, _, err := findBox(f, moovStart, moovStart+moovSize, "mvhd")
	if err != nil {
		return time.Time{}, err
	}

	if _, err := f.Seek(mvhdStart, io.SeekStart); err != nil {
		return time.Time{}, err
	}

	versionFlags := make([]byte, 4)
	if _, err := io.ReadFull(f, versionFlags); err != nil {
		return time.Time{}, err
	}

	var creation uint64
	switch versionFlags[0] {
	case 1:
		buf := make([]byte, 8)
		if _, err := io.ReadFull(f, buf); err != nil {
			return time.Time{}, err
		}
		creation = binary.BigEndian.Uint64(buf)
	default:
		buf := make([]byte, 4)
		if _, err := io.ReadFull(f, buf); err != nil {
			return time.Time{}, err
		}
		creation = uint64(binary.BigEndian.Uint32(buf))
	}

	if creation < quicktimeEpochOffset {
		return time.Time{}, errNoCreationTime
	}
	return time.Unix(int64(creation-quicktimeEpochOffset), 0).UTC(), nil
}

// findBox scans sibling boxes in [start, end) and returns the payload
// offset and size of the first box with the given type.
func findBox(f *os.File, start, end int64, boxType string) (int64, int64, error) {
	offset := start
	for offset+8 <= end {
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return 0, 0, err
		}
		header := make([]byte, 8)
		if _, err := io.ReadFull(f, header); err != nil {
			return 0, 0, err
		}

		size := int64(binary.BigEndian.Uint32(header[0:4]))
		headerLen := int64(8)
		switch size {
		case 1: // 64-bit extended size
			ext := make([]byte, 8)
			if _, err := io.ReadFull(f, ext); err != nil {
				return 0, 0, err
			}
			size = int64(binary.BigEndian.Uint64(ext))
			headerLen = 16
		case 0: // box extends to end of enclosing scope
			size = end - offset
		}
		if size < headerLen || offset+size > end {
			return 0, 0, fmt.Errorf("malformed box at offset %d", offset)
		}

		if string(header[4:8]) == boxType {
			return offset + headerLen, size - headerLen, nil
		}
		offset += size
	}
	return 0, 0, fmt.Errorf("no %s box found", boxType)
}
