package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"moodlog/internal/editor"
	"moodlog/internal/storage"
	"moodlog/internal/ui"
)

var (
	addDate  string
	addTitle string
	addMood  string
	addTags  string
)

var addCmd = &cobra.Command{
	Use:   "add [content...]",
	Short: "Add a new journal entry",
	Long: `Add a new journal entry.

If content is provided as arguments, it is used directly.
If "-" is provided, content is read from stdin.
If no content is provided, your editor is opened.

Sentiment is computed from the content at creation and never recomputed.`,
	Example: `  moodlog add --title "Good day" "I am happy"
  moodlog add --title "Good day" --mood "😊 행복" --tags "work, friends" "I am happy"
  echo "piped content" | moodlog add --title "From a pipe" -
  moodlog add --title "Long form"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string

		switch {
		case len(args) == 1 && args[0] == "-":
			// Read from stdin
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error reading stdin:", err)
				os.Exit(2)
			}
			content = string(data)

		case len(args) > 0:
			// Inline content
			content = strings.Join(args, " ")

		default:
			// Open editor
			editorCmd := editor.Resolve(appConfig.Editor)
			var err error
			var changed bool
			content, changed, err = editor.Edit(editorCmd, "")
			if err != nil {
				fmt.Fprintln(os.Stderr, "Editor error:", err)
				os.Exit(3)
			}
			if !changed {
				fmt.Fprintln(os.Stderr, "Error: empty content")
				os.Exit(1)
			}
		}

		date := addDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		id, err := service.AddEntry(date, addTitle, content, addMood, addTags)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			if errors.Is(err, storage.ErrValidation) {
				os.Exit(1)
			}
			os.Exit(2)
		}

		e, _, err := service.GetEntry(id)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(2)
		}

		if jsonOutput {
			ui.FormatJSON(os.Stdout, e)
		} else {
			ui.FormatEntryCreated(os.Stdout, e)
		}

		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addTitle, "title", "", "entry title (required)")
	addCmd.Flags().StringVar(&addMood, "mood", "", `mood label (see "moodlog moods")`)
	addCmd.Flags().StringVar(&addTags, "tags", "", "comma-separated tags")
	rootCmd.AddCommand(addCmd)
}
