// Package walker enumerates media files under configured root directories,
// partitioned by kind. Traversal is best-effort: unreadable directories are
// logged and skipped, never fatal.
package walker

import (
	"io/fs"
	"log/slog"
	"path/filepath"

	"shoebox/internal/logging"
	"shoebox/internal/media"
)

// Result partitions discovered file paths by media kind. Paths appear in
// filesystem enumeration order; downstream stages rely on that order only
// for first-wins duplicate tie-breaking.
type Result struct {
	Images []string
	Videos []string
}

// Count returns the total number of discovered media files.
func (r Result) Count() int {
	return len(r.Images) + len(r.Videos)
}

// Walk recursively traverses each root, classifying every regular file by
// extension. Files of unrecognized kind are silently excluded. Traversal
// errors skip the affected subtree and the walk continues.
func Walk(roots []string, logger *slog.Logger) Result {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("component", "walker"))

	var result Result
	for _, root := range roots {
		walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Warn("skipping unreadable path",
					logging.String("path", path), logging.Error(err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			switch media.Classify(path) {
			case media.KindImage:
				result.Images = append(result.Images, path)
			case media.KindVideo:
				result.Videos = append(result.Videos, path)
			}
			return nil
		})
		if walkErr != nil {
			// WalkDir only fails here when the callback returns an error,
			// which the handler above never does.
			logger.Warn("walk aborted", logging.String("root", root), logging.Error(walkErr))
		}
	}
	return result
}
