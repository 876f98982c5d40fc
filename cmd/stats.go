package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moodlog/internal/report"
	"moodlog/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mood frequencies and the sentiment trend",
	Long: "Show how often each mood was recorded and the per-entry sentiment " +
		"series in chronological order.",
	Example: `  moodlog stats
  moodlog stats --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := service.ListEntries()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		stats := ui.Stats{
			Moods:     report.CountMoods(entries),
			Sentiment: report.SentimentSeries(entries),
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, stats)
		} else {
			var buf bytes.Buffer
			ui.FormatStats(&buf, stats, theme)
			ui.OutputOrPage(os.Stdout, buf.String(), false)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
