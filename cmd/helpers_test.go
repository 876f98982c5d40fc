package cmd

import (
	"testing"

	"moodlog/internal/config"
	"moodlog/internal/diary"
	"moodlog/internal/sentiment"
	"moodlog/internal/storage/sqlite"
	"moodlog/internal/ui"
)

// setupTestEnv wires the package-level command state against a temp-dir
// store, mirroring what PersistentPreRunE does for a real invocation.
func setupTestEnv(t *testing.T) *diary.Service {
	t.Helper()

	s, err := sqlite.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating sqlite store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	store = s
	service = diary.New(s, sentiment.NewScorer())
	appConfig = &config.Config{Theme: "default-dark"}
	theme = ui.ResolveTheme(appConfig.Theme)
	return service
}
