package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	LogLevel  string          `toml:"log_level"`
	Collector CollectorConfig `toml:"collector"`
	Targets   TargetsConfig   `toml:"targets"`
}

type CollectorConfig struct {
	Subreddits []string `toml:"subreddits"`
	Query      string   `toml:"query"`
	Limit      int      `toml:"limit"`
}

type TargetsConfig struct {
	CSV    CSVTargetConfig    `toml:"csv"`
	Feed   FeedTargetConfig   `toml:"feed"`
	SQLite SQLiteTargetConfig `toml:"sqlite"`
}

type CSVTargetConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type FeedTargetConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	Title   string `toml:"title"`
	Link    string `toml:"link"`
}

type SQLiteTargetConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Default reproduces the baseline run: the fixed six-subreddit list, the
// fixed search query, 50 posts per subreddit, CSV output only.
func Default() Config {
	return Config{
		LogLevel: "info",
		Collector: CollectorConfig{
			Subreddits: []string{
				"eldercare",
				"caregivers",
				"agingparents",
				"dementia",
				"nursing",
				"premed",
			},
			Query: "care OR dementia OR help OR caregiver OR senior",
			Limit: 50,
		},
		Targets: TargetsConfig{
			CSV: CSVTargetConfig{
				Enabled: true,
				Path:    "caregiving_reddit_posts.csv",
			},
			Feed: FeedTargetConfig{
				Enabled: false,
				Path:    "caregiving_reddit_posts.atom",
				Title:   "Caregiving posts",
			},
			SQLite: SQLiteTargetConfig{
				Enabled: false,
				Path:    "./careminer.db",
			},
		},
	}
}

// Load reads the TOML config at path on top of the defaults. A missing file
// is not an error: the defaults alone are a complete configuration.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// SlogLevel maps the configured log_level onto a slog level. Unknown values
// are rejected by validation, so the default branch only covers "info".
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func validateConfig(config *Config) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", config.LogLevel)
	}

	if len(config.Collector.Subreddits) == 0 {
		return fmt.Errorf("at least one subreddit must be configured")
	}

	if config.Collector.Query == "" {
		return fmt.Errorf("search query must not be empty")
	}

	if config.Collector.Limit <= 0 {
		return fmt.Errorf("limit must be positive")
	}

	if !config.Targets.CSV.Enabled && !config.Targets.Feed.Enabled && !config.Targets.SQLite.Enabled {
		return fmt.Errorf("at least one target must be enabled")
	}

	if config.Targets.CSV.Enabled && config.Targets.CSV.Path == "" {
		return fmt.Errorf("csv target path must not be empty")
	}

	if config.Targets.Feed.Enabled && config.Targets.Feed.Path == "" {
		return fmt.Errorf("feed target path must not be empty")
	}

	if config.Targets.SQLite.Enabled && config.Targets.SQLite.Path == "" {
		return fmt.Errorf("sqlite target path must not be empty")
	}

	return nil
}
