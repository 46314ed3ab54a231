package reorg

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"shoebox/internal/catalog"
	"shoebox/internal/config"
	"shoebox/internal/fileutil"
	"shoebox/internal/logging"
	"shoebox/internal/media"
)

// Summary reports what one reorganization run did.
type Summary struct {
	Entries           int
	Moved             int
	SkippedDuplicates int
	SkippedUnknown    int
	Errors            int
}

// Reorganizer moves cataloged files into the library layout.
type Reorganizer struct {
	store  *catalog.Store
	cfg    *config.Config
	logger *slog.Logger
	dryRun bool
}

// New constructs a reorganizer. With dryRun set, destinations are computed
// and logged but nothing on disk changes.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger, dryRun bool) *Reorganizer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Reorganizer{
		store:  store,
		cfg:    cfg,
		logger: logger.With(logging.String("component", "reorg")),
		dryRun: dryRun,
	}
}

// Run relocates every catalog entry whose hash has not been relocated yet
// this run. Per-entry failures are logged and counted; Run only fails when
// the catalog cannot be read or the context is canceled.
func (r *Reorganizer) Run(ctx context.Context) (Summary, error) {
	logger := r.logger.With(logging.String("run_id", uuid.NewString()))
	if r.dryRun {
		logger = logger.With(logging.Bool("dry_run", true))
	}

	entries, err := r.store.All(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("read catalog: %w", err)
	}

	summary := Summary{Entries: len(entries)}
	relocated := make(map[string]string)

	logger.Info("starting reorganization", logging.Int("entries", len(entries)))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		r.relocate(logger, entry, relocated, &summary)
	}

	logger.Info("reorganization complete",
		logging.Int("moved", summary.Moved),
		logging.Int("skipped_duplicates", summary.SkippedDuplicates),
		logging.Int("skipped_unknown", summary.SkippedUnknown),
		logging.Int("errors", summary.Errors),
	)
	return summary, nil
}

func (r *Reorganizer) relocate(logger *slog.Logger, entry catalog.Entry, relocated map[string]string, summary *Summary) {
	if dest, ok := relocated[entry.Hash]; ok {
		logger.Debug("hash already relocated",
			logging.String("path", entry.Path), logging.String("destination", dest))
		summary.SkippedDuplicates++
		return
	}

	var baseDir string
	switch media.Classify(entry.Path) {
	case media.KindImage:
		baseDir = r.cfg.PhotoLibraryDir()
	case media.KindVideo:
		baseDir = r.cfg.VideoLibraryDir()
	default:
		logger.Warn("unrecognized media kind", logging.String("path", entry.Path))
		summary.SkippedUnknown++
		return
	}

	year := entry.Year()
	if year == "" {
		logger.Warn("entry has no usable capture year",
			logging.Int64("id", entry.ID), logging.String("path", entry.Path))
		summary.Errors++
		return
	}

	destDir := filepath.Join(baseDir, year)
	dest := filepath.Join(destDir, filepath.Base(entry.Path))

	if r.dryRun {
		logger.Info("would move file",
			logging.String("path", entry.Path), logging.String("destination", dest))
		relocated[entry.Hash] = dest
		summary.Moved++
		return
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		logger.Warn("create destination directory failed",
			logging.String("destination", destDir), logging.Error(err))
		summary.Errors++
		return
	}

	if err := fileutil.MoveFile(entry.Path, dest); err != nil {
		logger.Warn("move failed",
			logging.String("path", entry.Path),
			logging.String("destination", dest),
			logging.Error(err))
		summary.Errors++
		return
	}

	relocated[entry.Hash] = dest
	summary.Moved++
	logger.Info("moved file",
		logging.String("path", entry.Path), logging.String("destination", dest))
}
