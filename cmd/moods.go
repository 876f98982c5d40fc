package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"moodlog/internal/entry"
	"moodlog/internal/ui"
)

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "List the suggested mood labels",
	Long: "List the suggested mood labels for new entries. Any text is " +
		"accepted for a mood; these are the labels interfaces should offer.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return ui.FormatJSON(os.Stdout, entry.Moods)
		}
		for _, m := range entry.Moods {
			fmt.Fprintln(cmd.OutOrStdout(), m)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moodsCmd)
}
