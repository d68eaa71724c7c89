package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careminer/internal/config"
)

func TestFromConfigBuildsEnabledTargetsInOrder(t *testing.T) {
	cfg := config.Default().Targets
	built := FromConfig(cfg)
	require.Len(t, built, 1)
	assert.Equal(t, "csv", built[0].Name())

	cfg.Feed.Enabled = true
	cfg.SQLite.Enabled = true
	built = FromConfig(cfg)
	require.Len(t, built, 3)
	assert.Equal(t, "csv", built[0].Name())
	assert.Equal(t, "feed", built[1].Name())
	assert.Equal(t, "sqlite", built[2].Name())
}

func TestFromConfigAllDisabled(t *testing.T) {
	built := FromConfig(config.TargetsConfig{})
	assert.Empty(t, built)
}
