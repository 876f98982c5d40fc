package sqlite

import (
	"testing"

	"moodlog/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("creating sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func makeEntry(date, title, content string) storage.NewEntry {
	return storage.NewEntry{
		Date:    date,
		Title:   title,
		Content: content,
		TagBlob: "[]",
	}
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStore(t)

	e := storage.NewEntry{
		Date:      "2024-01-15",
		Title:     "Good day",
		Content:   "I am happy",
		Mood:      "😊 행복",
		TagBlob:   `["work","friends"]`,
		Sentiment: 0.57,
	}
	id, err := s.Insert(e)
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id != 1 {
		t.Errorf("first id = %d, want 1", id)
	}

	got, ok, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get: entry not found after Insert")
	}
	if got.Date != e.Date || got.Title != e.Title || got.Content != e.Content ||
		got.Mood != e.Mood || got.TagBlob != e.TagBlob || got.Sentiment != e.Sentiment {
		t.Errorf("Get = %+v, want fields of %+v", got, e)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Get(42)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing id")
	}
}

func TestIDsNeverReused(t *testing.T) {
	s := newTestStore(t)

	id1, _ := s.Insert(makeEntry("2024-01-01", "one", "first"))
	id2, _ := s.Insert(makeEntry("2024-01-02", "two", "second"))
	if id1 != 1 || id2 != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", id1, id2)
	}

	if err := s.Delete(id2); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	id3, err := s.Insert(makeEntry("2024-01-03", "three", "third"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if id3 != 3 {
		t.Errorf("id after delete = %d, want 3 (never reuse %d)", id3, id2)
	}
}

func TestListAllOrdering(t *testing.T) {
	s := newTestStore(t)

	// Inserted out of date order on purpose.
	s.Insert(makeEntry("2024-01-02", "middle", "b"))
	s.Insert(makeEntry("2024-01-03", "newest", "c"))
	s.Insert(makeEntry("2024-01-01", "oldest", "a"))
	s.Insert(makeEntry("2024-01-03", "newest tie", "d"))

	rows, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	// Non-increasing by date
	for i := 1; i < len(rows); i++ {
		if rows[i].Date > rows[i-1].Date {
			t.Errorf("rows not date-descending at index %d", i)
		}
	}

	// Equal dates: newest insertion first
	if rows[0].Title != "newest tie" || rows[1].Title != "newest" {
		t.Errorf("tie-break order = %q, %q; want newest insertion first",
			rows[0].Title, rows[1].Title)
	}
}

func TestSearch(t *testing.T) {
	s := newTestStore(t)

	s.Insert(makeEntry("2024-01-01", "Good day", "I am happy"))
	s.Insert(makeEntry("2024-01-02", "happy title", "nothing here"))
	s.Insert(makeEntry("2024-01-03", "Neutral", "plain text"))

	t.Run("matches title or content", func(t *testing.T) {
		rows, err := s.Search("happy")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 matches, got %d", len(rows))
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		rows, err := s.Search("Happy")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected 0 matches for %q, got %d", "Happy", len(rows))
		}
	})

	t.Run("empty keyword matches all", func(t *testing.T) {
		rows, err := s.Search("")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(rows) != 3 {
			t.Errorf("expected 3 matches, got %d", len(rows))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		rows, err := s.Search("nonexistent")
		if err != nil {
			t.Fatalf("Search: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected 0 matches, got %d", len(rows))
		}
	})
}

func TestSearchLiteralWildcards(t *testing.T) {
	s := newTestStore(t)

	s.Insert(makeEntry("2024-01-01", "progress", "50% done"))
	s.Insert(makeEntry("2024-01-02", "snake_case", "variable naming"))
	s.Insert(makeEntry("2024-01-03", "plain", "no special characters"))

	rows, err := s.Search("%")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(rows) != 1 || rows[0].Content != "50% done" {
		t.Errorf("Search(%%) matched %d rows, want the literal-percent row only", len(rows))
	}

	rows, err = s.Search("_")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "snake_case" {
		t.Errorf("Search(_) matched %d rows, want the literal-underscore row only", len(rows))
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := newTestStore(t)

	id, _ := s.Insert(makeEntry("2024-01-01", "gone soon", "bye"))

	if err := s.Delete(id); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if _, ok, _ := s.Get(id); ok {
		t.Error("entry still present after Delete")
	}
	if err := s.Delete(id); err != nil {
		t.Errorf("second Delete: %v, want nil (no-op)", err)
	}
	if err := s.Delete(9999); err != nil {
		t.Errorf("Delete of never-existing id: %v, want nil", err)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	id, err := s.Insert(makeEntry("2024-01-01", "persisted", "still here"))
	if err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := New(dir)
	if err != nil {
		t.Fatalf("reopening store: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get(id)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !ok || got.Title != "persisted" {
		t.Errorf("entry lost across reopen: ok=%v, got=%+v", ok, got)
	}
}

func TestInsertRejectsBlankFields(t *testing.T) {
	s := newTestStore(t)

	// The schema CHECKs are the last line of defense behind service
	// validation; nothing may be written when they fire.
	if _, err := s.Insert(makeEntry("2024-01-01", "   ", "content")); err == nil {
		t.Error("expected error for blank title")
	}
	if _, err := s.Insert(makeEntry("2024-01-01", "title", " ")); err == nil {
		t.Error("expected error for blank content")
	}
	if _, err := s.Insert(makeEntry("not-a-date", "title", "content")); err == nil {
		t.Error("expected error for malformed date")
	}

	rows, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows after failed inserts, got %d", len(rows))
	}
}
