// Package fingerprint derives content-identity hashes for files. Two files
// with equal fingerprints are treated as duplicates by the catalog.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// chunkSize bounds how much of a file is held in memory while hashing.
const chunkSize = 4096

// File returns the lower-case hex SHA-256 digest of the file's full byte
// contents, streaming in fixed-size chunks so arbitrarily large files hash
// in bounded memory.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	hasher := sha256.New()
	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
