package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"eldercare", "caregivers", "agingparents", "dementia", "nursing", "premed"}, cfg.Collector.Subreddits)
	assert.Equal(t, "care OR dementia OR help OR caregiver OR senior", cfg.Collector.Query)
	assert.Equal(t, 50, cfg.Collector.Limit)
	assert.True(t, cfg.Targets.CSV.Enabled)
	assert.Equal(t, "caregiving_reddit_posts.csv", cfg.Targets.CSV.Path)
	assert.False(t, cfg.Targets.Feed.Enabled)
	assert.False(t, cfg.Targets.SQLite.Enabled)
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[collector]
subreddits = ["eldercare"]
limit = 10

[targets.sqlite]
enabled = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"eldercare"}, cfg.Collector.Subreddits)
	assert.Equal(t, 10, cfg.Collector.Limit)
	// Unset keys keep their defaults.
	assert.Equal(t, "care OR dementia OR help OR caregiver OR senior", cfg.Collector.Query)
	assert.True(t, cfg.Targets.CSV.Enabled)
	assert.True(t, cfg.Targets.SQLite.Enabled)
	assert.Equal(t, "./careminer.db", cfg.Targets.SQLite.Path)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"no subreddits": `
[collector]
subreddits = []
`,
		"zero limit": `
[collector]
limit = 0
`,
		"no targets": `
[targets.csv]
enabled = false
`,
		"csv without path": `
[targets.csv]
enabled = true
path = ""
`,
		"unknown log level": `
log_level = "loud"
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`log_level = "debug"`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())

	defaults := Default()
	assert.Equal(t, slog.LevelInfo, defaults.SlogLevel())
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[collector\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
