package catalog

// Entry is one cataloged file occurrence.
//
// DateTaken and DateSaved are RFC 3339 strings. DateTaken is the
// best-effort capture time (embedded metadata or filesystem fallback);
// DateSaved is the wall-clock time the row was written.
type Entry struct {
	ID        int64
	Hash      string
	Path      string
	Size      int64
	DateTaken string
	DateSaved string
	Duplicate bool
}

// Year returns the four-digit year prefix of DateTaken, or "" when the
// value is too short to carry one.
func (e Entry) Year() string {
	if len(e.DateTaken) < 4 {
		return ""
	}
	return e.DateTaken[:4]
}

// Stats summarizes the catalog for reporting.
type Stats struct {
	Entries        int64
	DistinctHashes int64
	Duplicates     int64
}
