package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"moodlog/internal/entry"
	"moodlog/internal/report"
)

// FormatEntryCreated formats a creation confirmation message.
func FormatEntryCreated(w io.Writer, e entry.Entry) {
	fmt.Fprintf(w, "Created entry %d (%s) with sentiment %+.2f\n", e.ID, e.Date, e.Sentiment)
}

// FormatEntryDeleted formats a deletion confirmation message.
func FormatEntryDeleted(w io.Writer, id int64) {
	fmt.Fprintf(w, "Deleted entry %d.\n", id)
}

// FormatEntryFull formats a full entry display with metadata header. Content
// is rendered as markdown using the theme's glamour style.
func FormatEntryFull(w io.Writer, e entry.Entry, theme Theme) {
	fmt.Fprintf(w, "Entry: %d\n", e.ID)
	fmt.Fprintf(w, "Date: %s\n", e.Date)
	fmt.Fprintf(w, "Title: %s\n", e.Title)
	if e.Mood != "" {
		fmt.Fprintf(w, "Mood: %s\n", e.Mood)
	}
	if len(e.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(e.Tags, ", "))
	}
	score := theme.SentimentStyle(e.Sentiment).Render(fmt.Sprintf("%+.2f", e.Sentiment))
	fmt.Fprintf(w, "Sentiment: %s\n", score)
	fmt.Fprintln(w)

	fmt.Fprintln(w, RenderMarkdownWithStyle(e.Content, 80, theme.MarkdownStyle))
}

// FormatEntryList formats entries as a table, one line per entry, newest
// date first.
func FormatEntryList(w io.Writer, entries []entry.Entry, theme Theme) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No journal entries found.")
		return
	}
	for _, e := range entries {
		mood := e.Mood
		if mood == "" {
			mood = "-"
		}
		score := theme.SentimentStyle(e.Sentiment).Render(fmt.Sprintf("%+.2f", e.Sentiment))
		fmt.Fprintf(w, "%4d  %s  %s  %s  %s\n",
			e.ID,
			e.Date,
			score,
			mood,
			e.Preview(48),
		)
	}
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Title     string   `json:"title"`
	Mood      string   `json:"mood"`
	Tags      []string `json:"tags"`
	Sentiment float64  `json:"sentiment"`
	Preview   string   `json:"preview"`
}

// ToSummaries converts entries to summary format for JSON list output.
func ToSummaries(entries []entry.Entry) []EntrySummary {
	summaries := make([]EntrySummary, len(entries))
	for i, e := range entries {
		summaries[i] = EntrySummary{
			ID:        e.ID,
			Date:      e.Date,
			Title:     e.Title,
			Mood:      e.Mood,
			Tags:      e.Tags,
			Sentiment: e.Sentiment,
			Preview:   e.Preview(60),
		}
	}
	return summaries
}

// DeleteResult is a JSON representation for delete output.
type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// Stats is a JSON representation for stats output.
type Stats struct {
	Moods     []report.MoodCount      `json:"moods"`
	Sentiment []report.SentimentPoint `json:"sentiment"`
}

// FormatStats formats mood counts and the sentiment series as plain text.
func FormatStats(w io.Writer, s Stats, theme Theme) {
	if len(s.Sentiment) == 0 {
		fmt.Fprintln(w, "No journal entries found.")
		return
	}

	fmt.Fprintln(w, "Moods:")
	if len(s.Moods) == 0 {
		fmt.Fprintln(w, "  (none recorded)")
	}
	for _, c := range s.Moods {
		fmt.Fprintf(w, "  %s  %d\n", c.Mood, c.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Sentiment:")
	for _, p := range s.Sentiment {
		score := theme.SentimentStyle(p.Sentiment).Render(fmt.Sprintf("%+.2f", p.Sentiment))
		fmt.Fprintf(w, "  %s  %s\n", p.Date, score)
	}
}
