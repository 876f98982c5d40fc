package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moodlog/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long:  "List journal entries with mood and sentiment, sorted by date (newest first).",
	Example: `  moodlog list
  moodlog list --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := service.ListEntries()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, ui.ToSummaries(entries))
		} else {
			var buf bytes.Buffer
			ui.FormatEntryList(&buf, entries, theme)
			ui.OutputOrPage(os.Stdout, buf.String(), false)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
