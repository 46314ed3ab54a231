package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

const entryColumns = "id, hash, path, size, date_taken, date_saved, duplicate"

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	lock *flock.Flock
	path string
}

// Open connects to the catalog database at path, acquires the single-writer
// lock, and initializes the schema. Schema failure is fatal: the catalog is
// unusable without it.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create catalog directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire catalog lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("catalog %s is in use by another run", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, lock: lock, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Path returns the catalog database location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection and releases the catalog lock.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Exists reports whether a row with this exact path is already cataloged.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM files WHERE path = ?`, path).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("check path: %w", err)
	}
	return count > 0, nil
}

// FindByHash returns the earliest-inserted row with this content hash, or
// nil when the hash is not cataloged.
func (s *Store) FindByHash(ctx context.Context, hash string) (*Entry, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+entryColumns+` FROM files WHERE hash = ? ORDER BY id LIMIT 1`,
		hash,
	)
	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by hash: %w", err)
	}
	return entry, nil
}

// Insert appends a new row and assigns entry.ID. Rows are never updated in
// place; the insert is a single statement and therefore atomic.
func (s *Store) Insert(ctx context.Context, entry *Entry) error {
	if entry == nil {
		return errors.New("entry is nil")
	}
	if strings.TrimSpace(entry.Hash) == "" {
		return errors.New("entry hash is empty")
	}
	if strings.TrimSpace(entry.Path) == "" {
		return errors.New("entry path is empty")
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO files (hash, path, size, date_taken, date_saved, duplicate)
         VALUES (?, ?, ?, ?, ?, ?)`,
		entry.Hash,
		entry.Path,
		entry.Size,
		entry.DateTaken,
		entry.DateSaved,
		boolToInt(entry.Duplicate),
	)
	if err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	entry.ID = id
	return nil
}

// All returns every catalog entry ordered by insertion so reorganization is
// reproducible.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM files ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// Stats summarizes row, hash, and duplicate counts.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1), COUNT(DISTINCT hash), COALESCE(SUM(duplicate), 0) FROM files`,
	).Scan(&stats.Entries, &stats.DistinctHashes, &stats.Duplicates)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var entry Entry
	var duplicate int
	if err := row.Scan(
		&entry.ID,
		&entry.Hash,
		&entry.Path,
		&entry.Size,
		&entry.DateTaken,
		&entry.DateSaved,
		&duplicate,
	); err != nil {
		return nil, err
	}
	entry.Duplicate = duplicate != 0
	return &entry, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
