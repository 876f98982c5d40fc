package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"moodlog/internal/ui"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a journal entry",
	Long: "Permanently delete a journal entry. Requires confirmation unless " +
		"--force is used. Deleting an id that does not exist is a no-op and " +
		"still reports success.",
	Example: `  moodlog delete 12
  moodlog delete 12 --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid entry id %q\n", args[0])
			os.Exit(1)
		}

		// Fetch the entry to show a preview; a miss is not an error since
		// delete is idempotent.
		e, ok, err := service.GetEntry(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if ok && !forceDelete {
			fmt.Fprintf(os.Stdout, "Entry: %d (%s) %s\n", e.ID, e.Date, e.Title)
			fmt.Fprintf(os.Stdout, "Preview: %s\n\n", e.Preview(60))

			confirmed, err := ui.Confirm("Delete this entry? This cannot be undone.", theme)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(2)
			}
			if !confirmed {
				fmt.Fprintln(os.Stdout, "Cancelled.")
				return nil
			}
		}

		if err := service.DeleteEntry(id); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, ui.DeleteResult{ID: id, Deleted: true})
		} else {
			ui.FormatEntryDeleted(os.Stdout, id)
		}

		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
