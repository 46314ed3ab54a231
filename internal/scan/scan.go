package scan

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shoebox/internal/catalog"
	"shoebox/internal/fingerprint"
	"shoebox/internal/logging"
	"shoebox/internal/media"
	"shoebox/internal/metadata"
	"shoebox/internal/walker"
)

// Progress is invoked after each discovered file has been handled, with the
// number handled so far and the total discovered.
type Progress func(done, total int)

// Summary reports what one scan run did.
type Summary struct {
	Discovered      int
	Cataloged       int
	Duplicates      int
	SkippedExisting int
	Errors          int
}

// Scanner drives the cataloging pipeline against one catalog store.
type Scanner struct {
	store    *catalog.Store
	resolver *metadata.Resolver
	logger   *slog.Logger
	progress Progress
}

// New constructs a scanner. A nil logger discards diagnostics.
func New(store *catalog.Store, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Scanner{
		store:    store,
		resolver: metadata.NewResolver(logger),
		logger:   logger.With(logging.String("component", "scan")),
	}
}

// SetProgress registers a per-file progress callback.
func (s *Scanner) SetProgress(fn Progress) {
	s.progress = fn
}

// Run discovers media under roots and catalogs every file not already
// present by path. Per-file failures are logged and counted; Run only fails
// on context cancellation.
func (s *Scanner) Run(ctx context.Context, roots []string) (Summary, error) {
	logger := s.logger.With(logging.String("run_id", uuid.NewString()))
	logger.Info("starting scan", logging.Int("roots", len(roots)))

	found := walker.Walk(roots, logger)
	summary := Summary{Discovered: found.Count()}
	seen := make(map[string]struct{})

	groups := []struct {
		kind  media.Kind
		paths []string
	}{
		{media.KindImage, found.Images},
		{media.KindVideo, found.Videos},
	}

	done := 0
	for _, group := range groups {
		for _, path := range group.paths {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
			s.catalogFile(ctx, logger, path, group.kind, seen, &summary)
			done++
			if s.progress != nil {
				s.progress(done, summary.Discovered)
			}
		}
	}

	logger.Info("scan complete",
		logging.Int("discovered", summary.Discovered),
		logging.Int("cataloged", summary.Cataloged),
		logging.Int("duplicates", summary.Duplicates),
		logging.Int("skipped_existing", summary.SkippedExisting),
		logging.Int("errors", summary.Errors),
	)
	return summary, nil
}

func (s *Scanner) catalogFile(ctx context.Context, logger *slog.Logger, path string, kind media.Kind, seen map[string]struct{}, summary *Summary) {
	exists, err := s.store.Exists(ctx, path)
	if err != nil {
		logger.Warn("catalog lookup failed", logging.String("path", path), logging.Error(err))
		summary.Errors++
		return
	}
	if exists {
		logger.Debug("path already cataloged", logging.String("path", path))
		summary.SkippedExisting++
		return
	}

	hash, err := fingerprint.File(path)
	if err != nil {
		logger.Warn("fingerprint failed", logging.String("path", path), logging.Error(err))
		summary.Errors++
		return
	}

	info, err := s.resolver.Resolve(path, kind)
	if err != nil {
		logger.Warn("metadata resolution failed", logging.String("path", path), logging.Error(err))
		summary.Errors++
		return
	}

	duplicate := false
	if _, ok := seen[hash]; ok {
		duplicate = true
	} else {
		prior, err := s.store.FindByHash(ctx, hash)
		if err != nil {
			logger.Warn("hash lookup failed", logging.String("path", path), logging.Error(err))
			summary.Errors++
			return
		}
		duplicate = prior != nil
	}

	entry := &catalog.Entry{
		Hash:      hash,
		Path:      path,
		Size:      info.Size,
		DateTaken: info.DateTaken.Format(time.RFC3339),
		DateSaved: info.DateSaved.Format(time.RFC3339),
		Duplicate: duplicate,
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		logger.Warn("catalog insert failed", logging.String("path", path), logging.Error(err))
		summary.Errors++
		return
	}

	// Track the hash only once its non-duplicate row is persisted, so a
	// failed insert cannot leave later copies flagged against nothing.
	if !duplicate {
		seen[hash] = struct{}{}
	}

	summary.Cataloged++
	if duplicate {
		summary.Duplicates++
		logger.Info("cataloged duplicate",
			logging.String("path", path), logging.String("hash", hash))
	} else {
		logger.Debug("cataloged file",
			logging.String("path", path), logging.String("hash", hash))
	}
}
