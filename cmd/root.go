package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"moodlog/internal/config"
	"moodlog/internal/diary"
	"moodlog/internal/sentiment"
	"moodlog/internal/storage/sqlite"
	"moodlog/internal/ui"
)

var (
	cfgFile    string
	dataDir    string
	jsonOutput bool

	appConfig *config.Config
	store     *sqlite.Store
	service   *diary.Service
	theme     ui.Theme
)

var rootCmd = &cobra.Command{
	Use:   "moodlog",
	Short: "A mood journal CLI",
	Long: "moodlog keeps dated journal entries with mood labels, free-form tags, " +
		"and a sentiment score computed from the content at creation.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override data directory from flag
		if dataDir != "" {
			appConfig.DataDir = dataDir
		}

		// The store is opened once per process and shared by all commands.
		store, err = sqlite.New(appConfig.DataDir)
		if err != nil {
			return fmt.Errorf("initializing storage: %w", err)
		}
		service = diary.New(store, sentiment.NewScorer())

		theme = ui.ResolveTheme(appConfig.Theme)
		if appConfig.MarkdownStyle != "" {
			theme.MarkdownStyle = appConfig.MarkdownStyle
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.moodlog)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}
