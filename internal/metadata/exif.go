package metadata

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifCaptureTime reads the embedded capture timestamp from an image.
// goexif prefers DateTimeOriginal and falls back to the plain DateTime tag.
func exifCaptureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	return x.DateTime()
}
