package entry

import (
	"fmt"
	"regexp"
	"strings"
)

// Moods is the suggested set of mood labels offered by user interfaces.
// The store itself accepts any text for a mood, including none.
var Moods = []string{
	"😊 행복",
	"😌 평온",
	"😴 피곤",
	"😢 슬픔",
	"😠 화남",
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Entry represents a single journal entry. Entries are immutable once
// created; sentiment is computed from content at creation and never changes.
type Entry struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	Sentiment float64  `json:"sentiment"`
}

// ValidateDate checks whether a date string is in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if !datePattern.MatchString(date) {
		return fmt.Errorf("invalid date %q (must be YYYY-MM-DD)", date)
	}
	return nil
}

// ParseTags splits a raw comma-separated tag field into an ordered list of
// trimmed, non-empty tags. Order and duplicates are preserved; empty or
// whitespace-only input yields an empty list.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Preview returns a truncated single-line preview of the entry content.
func (e *Entry) Preview(maxLen int) string {
	content := strings.ReplaceAll(e.Content, "\n", " ")
	if len(content) <= maxLen {
		return content
	}
	return content[:maxLen-3] + "..."
}
