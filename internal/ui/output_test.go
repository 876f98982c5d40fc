package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"moodlog/internal/entry"
	"moodlog/internal/report"
)

func testTheme() Theme {
	return ResolveTheme("default-dark")
}

func TestFormatEntryListEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryList(&buf, nil, testTheme())
	if !strings.Contains(buf.String(), "No journal entries found") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestFormatEntryList(t *testing.T) {
	entries := []entry.Entry{
		{ID: 2, Date: "2024-01-16", Title: "Second", Content: "more text", Sentiment: -0.3},
		{ID: 1, Date: "2024-01-15", Title: "First", Content: "I am happy", Mood: "😊 행복", Sentiment: 0.57},
	}

	var buf bytes.Buffer
	FormatEntryList(&buf, entries, testTheme())
	out := buf.String()

	for _, want := range []string{"2024-01-15", "2024-01-16", "😊 행복", "I am happy"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatEntryCreated(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryCreated(&buf, entry.Entry{ID: 7, Date: "2024-01-15", Sentiment: 0.57})
	out := buf.String()
	if !strings.Contains(out, "7") || !strings.Contains(out, "2024-01-15") {
		t.Errorf("creation message missing id/date: %q", out)
	}
}

func TestFormatEntryFull(t *testing.T) {
	e := entry.Entry{
		ID:        1,
		Date:      "2024-01-15",
		Title:     "Good day",
		Content:   "I am happy",
		Mood:      "😊 행복",
		Tags:      []string{"work", "friends"},
		Sentiment: 0.57,
	}

	var buf bytes.Buffer
	FormatEntryFull(&buf, e, testTheme())
	out := buf.String()

	for _, want := range []string{"Entry: 1", "Date: 2024-01-15", "Title: Good day", "Mood: 😊 행복", "work, friends"} {
		if !strings.Contains(out, want) {
			t.Errorf("full output missing %q:\n%s", want, out)
		}
	}
}

func TestToSummariesJSON(t *testing.T) {
	entries := []entry.Entry{
		{ID: 1, Date: "2024-01-15", Title: "Good day", Tags: []string{"work"}, Sentiment: 0.5},
	}

	var buf bytes.Buffer
	if err := FormatJSON(&buf, ToSummaries(entries)); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var result []EntrySummary
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if len(result) != 1 || result[0].ID != 1 || result[0].Title != "Good day" {
		t.Errorf("unexpected summaries: %+v", result)
	}
}

func TestFormatStats(t *testing.T) {
	var buf bytes.Buffer
	FormatStats(&buf, Stats{}, testTheme())
	if !strings.Contains(buf.String(), "No journal entries found") {
		t.Errorf("expected empty message, got %q", buf.String())
	}

	buf.Reset()
	stats := Stats{
		Moods:     []report.MoodCount{{Mood: "😊 행복", Count: 2}},
		Sentiment: []report.SentimentPoint{{Date: "2024-01-15", Sentiment: 0.5}},
	}
	FormatStats(&buf, stats, testTheme())
	out := buf.String()
	if !strings.Contains(out, "😊 행복") || !strings.Contains(out, "2024-01-15") {
		t.Errorf("stats output missing data:\n%s", out)
	}
}
