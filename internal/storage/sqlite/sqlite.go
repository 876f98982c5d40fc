// Package sqlite implements storage.Store on a libSQL database file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/tursodatabase/go-libsql"

	"moodlog/internal/storage"
)

// Store implements storage.Store using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New opens the journal database under dataDir, creating the directory,
// file, and schema on first use.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "moodlog.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The libsql driver requires Query here because the
	// pragma returns a result row.
	walRows, err := db.Query("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}
	walRows.Close()

	// LIKE is case-insensitive for ASCII by default; search promises exact
	// substring matching.
	if _, err := db.Exec("PRAGMA case_sensitive_like=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: configuring LIKE: %v", storage.ErrStorage, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	// AUTOINCREMENT keeps ids monotonic: an id is never reused after delete.
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			date      TEXT NOT NULL CHECK(date GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'),
			title     TEXT NOT NULL CHECK(length(trim(title)) > 0),
			content   TEXT NOT NULL CHECK(length(trim(content)) > 0),
			mood      TEXT NOT NULL DEFAULT '',
			tags      TEXT NOT NULL DEFAULT '[]',
			sentiment REAL NOT NULL DEFAULT 0 CHECK(sentiment BETWEEN -1.0 AND 1.0)
		);
		CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(date DESC);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert persists a new entry row and returns its assigned id. The single
// INSERT commits synchronously, so the row is visible to the next read.
func (s *Store) Insert(e storage.NewEntry) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO entries (date, title, content, mood, tags, sentiment) VALUES (?, ?, ?, ?, ?, ?)",
		e.Date, e.Title, e.Content, e.Mood, e.TagBlob, e.Sentiment,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: inserting entry: %v", storage.ErrStorage, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: reading new id: %v", storage.ErrStorage, err)
	}
	return id, nil
}

const selectColumns = "SELECT id, date, title, content, mood, tags, sentiment FROM entries"

// Rows sharing a date come back newest insertion first.
const orderByDate = " ORDER BY date DESC, id DESC"

// ListAll returns every row, newest date first.
func (s *Store) ListAll() ([]storage.Row, error) {
	return s.query(selectColumns + orderByDate)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns rows whose title or content contains keyword as a
// case-sensitive substring. An empty keyword matches every row.
func (s *Store) Search(keyword string) ([]storage.Row, error) {
	pattern := "%" + likeEscaper.Replace(keyword) + "%"
	return s.query(
		selectColumns+` WHERE title LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'`+orderByDate,
		pattern, pattern,
	)
}

func (s *Store) query(q string, args ...interface{}) ([]storage.Row, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	results := []storage.Row{}
	for rows.Next() {
		var r storage.Row
		if err := rows.Scan(&r.ID, &r.Date, &r.Title, &r.Content, &r.Mood, &r.TagBlob, &r.Sentiment); err != nil {
			return nil, fmt.Errorf("%w: scanning row: %v", storage.ErrStorage, err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading rows: %v", storage.ErrStorage, err)
	}
	return results, nil
}

// Get returns the row with the given id; ok is false when absent.
func (s *Store) Get(id int64) (storage.Row, bool, error) {
	row := s.db.QueryRow(selectColumns+" WHERE id = ?", id)

	var r storage.Row
	if err := row.Scan(&r.ID, &r.Date, &r.Title, &r.Content, &r.Mood, &r.TagBlob, &r.Sentiment); err != nil {
		if err == sql.ErrNoRows {
			return storage.Row{}, false, nil
		}
		return storage.Row{}, false, fmt.Errorf("%w: querying entry: %v", storage.ErrStorage, err)
	}
	return r, true, nil
}

// Delete removes the row with the given id. Deleting a missing id is a no-op.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("%w: deleting entry: %v", storage.ErrStorage, err)
	}
	return nil
}
