package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"moodlog/internal/ui"
)

var showContentOnly bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a journal entry",
	Long:  "Display the full content and metadata of a journal entry.",
	Example: `  moodlog show 12
  moodlog show 12 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid entry id %q\n", args[0])
			os.Exit(1)
		}

		e, ok, err := service.GetEntry(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: entry %d not found\n", id)
			os.Exit(1)
		}

		if showContentOnly {
			fmt.Fprintln(cmd.OutOrStdout(), e.Content)
			return nil
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, e)
		} else {
			var buf bytes.Buffer
			ui.FormatEntryFull(&buf, e, theme)
			ui.OutputOrPage(os.Stdout, buf.String(), false)
		}

		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showContentOnly, "content-only", false, "print just the entry content")
	rootCmd.AddCommand(showCmd)
}
