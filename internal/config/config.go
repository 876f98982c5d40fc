package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DataDir       string `mapstructure:"data_dir"`
	Editor        string `mapstructure:"editor"`
	Theme         string `mapstructure:"theme"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// DefaultDataDir returns the default data directory (~/.moodlog/).
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".moodlog")
	}
	return filepath.Join(home, ".moodlog")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("editor", "")
	v.SetDefault("theme", "default-dark")
	v.SetDefault("markdown_style", "")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// XDG support
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "moodlog"))
		}
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODLOG_DATA_DIR, MOODLOG_EDITOR, etc.
	v.SetEnvPrefix("MOODLOG")
	v.AutomaticEnv()

	// Read config file (a missing default config file is fine)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
