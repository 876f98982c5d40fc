package storage

import "errors"

// Sentinel errors for store operations.
var (
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

// NewEntry carries the fields of an entry about to be inserted.
type NewEntry struct {
	Date      string
	Title     string
	Content   string
	Mood      string
	TagBlob   string
	Sentiment float64
}

// Row is an entry as persisted, with tags still in their encoded form.
// The service layer decodes the blob before handing entries to callers.
type Row struct {
	ID        int64
	Date      string
	Title     string
	Content   string
	Mood      string
	TagBlob   string
	Sentiment float64
}

// Store defines the persistence interface for journal entries.
//
// ListAll and Search return rows sorted by date descending; rows sharing a
// date are ordered newest insertion first (id descending).
type Store interface {
	// Insert appends a new row and returns its assigned id. Ids are
	// monotonically assigned and never reused, even after Delete.
	Insert(e NewEntry) (int64, error)

	// ListAll returns every row.
	ListAll() ([]Row, error)

	// Search returns rows whose title or content contains keyword as a
	// case-sensitive substring. An empty keyword matches every row.
	Search(keyword string) ([]Row, error)

	// Get returns the row with the given id. A missing id yields ok=false,
	// not an error.
	Get(id int64) (Row, bool, error)

	// Delete removes the row with the given id if present. Deleting a
	// missing id is a no-op.
	Delete(id int64) error

	Close() error
}
