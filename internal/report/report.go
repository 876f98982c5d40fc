// Package report computes the derived views shown alongside entry listings:
// mood frequencies and the per-entry sentiment time series. These are plain
// aggregations over already-loaded entries, outside the persistence boundary.
package report

import (
	"sort"

	"moodlog/internal/entry"
)

// MoodCount pairs a mood label with how many entries carry it.
type MoodCount struct {
	Mood  string `json:"mood"`
	Count int    `json:"count"`
}

// CountMoods tallies mood labels across entries, most frequent first; ties
// break alphabetically. Entries without a mood are skipped.
func CountMoods(entries []entry.Entry) []MoodCount {
	tally := map[string]int{}
	for _, e := range entries {
		if e.Mood != "" {
			tally[e.Mood]++
		}
	}
	counts := make([]MoodCount, 0, len(tally))
	for mood, n := range tally {
		counts = append(counts, MoodCount{Mood: mood, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Mood < counts[j].Mood
	})
	return counts
}

// SentimentPoint is one entry's contribution to the sentiment time series.
type SentimentPoint struct {
	Date      string  `json:"date"`
	Sentiment float64 `json:"sentiment"`
}

// SentimentSeries projects entries onto (date, sentiment) points in
// chronological order, oldest first.
func SentimentSeries(entries []entry.Entry) []SentimentPoint {
	points := make([]SentimentPoint, len(entries))
	for i, e := range entries {
		points[i] = SentimentPoint{Date: e.Date, Sentiment: e.Sentiment}
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}
