package metadata

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"shoebox/internal/logging"
	"shoebox/internal/media"
)

// Info carries the catalog-facing metadata for one file.
type Info struct {
	Size      int64
	DateTaken time.Time
	DateSaved time.Time
}

// Resolver extracts capture timestamps from media files.
type Resolver struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver constructs a resolver. A nil logger discards extraction
// diagnostics.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Resolver{
		logger: logger.With(logging.String("component", "metadata")),
		now:    time.Now,
	}
}

// Resolve returns the file's size, its best-effort capture time, and the
// current wall-clock time. When no embedded capture time can be read the
// file's modification time stands in. Only a failed stat is an error.
func (r *Resolver) Resolve(path string, kind media.Kind) (Info, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}

	taken, ok := r.CaptureTime(path, kind)
	if !ok {
		taken = fileInfo.ModTime()
	}

	return Info{
		Size:      fileInfo.Size(),
		DateTaken: taken,
		DateSaved: r.now(),
	}, nil
}

// CaptureTime attempts to read an embedded capture timestamp from the file.
// The boolean reports whether one was found; callers own the fallback
// policy.
func (r *Resolver) CaptureTime(path string, kind media.Kind) (time.Time, bool) {
	switch kind {
	case media.KindImage:
		taken, err := exifCaptureTime(path)
		if err != nil {
			r.logger.Debug("no exif capture time",
				logging.String("path", path), logging.Error(err))
			return time.Time{}, false
		}
		return taken, true
	case media.KindVideo:
		taken, err := videoCaptureTime(path)
		if err != nil {
			r.logger.Debug("no video capture time",
				logging.String("path", path), logging.Error(err))
			return time.Time{}, false
		}
		return taken, true
	}
	return time.Time{}, false
}
