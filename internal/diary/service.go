// Package diary composes the sentiment scorer, tag codec, and entry store
// behind the single boundary consumed by user interfaces.
package diary

import (
	"fmt"
	"strings"

	"moodlog/internal/entry"
	"moodlog/internal/sentiment"
	"moodlog/internal/storage"
	"moodlog/internal/tag"
)

// Service is the only creation path for entries. It is constructed once per
// process with an opened store and shared by every command.
type Service struct {
	store  storage.Store
	scorer *sentiment.Scorer
}

// New builds a Service over an opened store.
func New(store storage.Store, scorer *sentiment.Scorer) *Service {
	return &Service{store: store, scorer: scorer}
}

// AddEntry validates the request, scores the content, encodes the tags, and
// inserts a new entry, returning its assigned id. Title and content must be
// non-empty after trimming and date must be YYYY-MM-DD; violations fail with
// storage.ErrValidation and nothing is written.
func (s *Service) AddEntry(date, title, content, mood, tagsRaw string) (int64, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if content == "" {
		missing = append(missing, "content")
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: missing required field(s): %s",
			storage.ErrValidation, strings.Join(missing, ", "))
	}
	if err := entry.ValidateDate(date); err != nil {
		return 0, fmt.Errorf("%w: %v", storage.ErrValidation, err)
	}

	blob, err := tag.Encode(entry.ParseTags(tagsRaw))
	if err != nil {
		return 0, err
	}

	return s.store.Insert(storage.NewEntry{
		Date:      date,
		Title:     title,
		Content:   content,
		Mood:      strings.TrimSpace(mood),
		TagBlob:   blob,
		Sentiment: s.scorer.Score(content),
	})
}

// ListEntries returns every entry, newest date first.
func (s *Service) ListEntries() ([]entry.Entry, error) {
	rows, err := s.store.ListAll()
	if err != nil {
		return nil, err
	}
	return decodeAll(rows)
}

// SearchEntries returns entries whose title or content contains term as a
// case-sensitive substring, newest date first. An empty term matches every
// entry.
func (s *Service) SearchEntries(term string) ([]entry.Entry, error) {
	rows, err := s.store.Search(term)
	if err != nil {
		return nil, err
	}
	return decodeAll(rows)
}

// GetEntry returns the entry with the given id; ok is false when absent.
func (s *Service) GetEntry(id int64) (entry.Entry, bool, error) {
	row, ok, err := s.store.Get(id)
	if err != nil || !ok {
		return entry.Entry{}, false, err
	}
	e, err := decode(row)
	if err != nil {
		return entry.Entry{}, false, err
	}
	return e, true, nil
}

// DeleteEntry removes the entry with the given id. Deleting a missing id is
// a no-op, so DeleteEntry is idempotent.
func (s *Service) DeleteEntry(id int64) error {
	return s.store.Delete(id)
}

func decodeAll(rows []storage.Row) ([]entry.Entry, error) {
	entries := make([]entry.Entry, len(rows))
	for i, row := range rows {
		e, err := decode(row)
		if err != nil {
			return nil, err
		}
		entries[i] = e
	}
	return entries, nil
}

// decode expands a stored row into an Entry. A tag blob that fails to decode
// indicates store corruption and propagates as tag.ErrFormat.
func decode(r storage.Row) (entry.Entry, error) {
	tags, err := tag.Decode(r.TagBlob)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("entry %d: %w", r.ID, err)
	}
	return entry.Entry{
		ID:        r.ID,
		Date:      r.Date,
		Title:     r.Title,
		Content:   r.Content,
		Mood:      r.Mood,
		Tags:      tags,
		Sentiment: r.Sentiment,
	}, nil
}
