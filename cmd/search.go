package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moodlog/internal/ui"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search journal entries",
	Long: "Search entries whose title or content contains the term as a " +
		"case-sensitive substring, sorted by date (newest first). An empty " +
		"term matches every entry.",
	Example: `  moodlog search happy
  moodlog search "friends" --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := ""
		if len(args) == 1 {
			term = args[0]
		}

		entries, err := service.SearchEntries(term)
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
	rootCmd.AddCommand(searchCmd)
}
