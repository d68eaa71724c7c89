package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careminer/internal/collector"
	"careminer/internal/config"
	"careminer/internal/reddit"
)

type stubClient struct {
	bySubreddit map[string][]reddit.Submission
	err         error
}

func (s *stubClient) Authenticate(ctx context.Context) error {
	return nil
}

func (s *stubClient) Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Submission, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bySubreddit[subreddit], nil
}

func testPipelineConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Collector.Subreddits = []string{"eldercare"}
	cfg.Targets.CSV.Path = filepath.Join(t.TempDir(), "out.csv")
	return &cfg
}

func newTestCollector(client collector.Client, cfg *config.Config) *collector.Collector {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return collector.New(client, cfg.Collector, logger, collector.WithOutput(io.Discard))
}

func TestPipelineEmptyRunWritesNoFile(t *testing.T) {
	cfg := testPipelineConfig(t)
	col := newTestCollector(&stubClient{}, cfg)

	require.NoError(t, pipeline(context.Background(), cfg, col))

	_, err := os.Stat(cfg.Targets.CSV.Path)
	assert.True(t, os.IsNotExist(err))
}

func TestPipelineEmptyRunLeavesExistingFileAlone(t *testing.T) {
	cfg := testPipelineConfig(t)
	require.NoError(t, os.WriteFile(cfg.Targets.CSV.Path, []byte("previous run\n"), 0o644))

	col := newTestCollector(&stubClient{}, cfg)
	require.NoError(t, pipeline(context.Background(), cfg, col))

	data, err := os.ReadFile(cfg.Targets.CSV.Path)
	require.NoError(t, err)
	assert.Equal(t, "previous run\n", string(data))
}

func TestPipelineExportsCollectedPosts(t *testing.T) {
	cfg := testPipelineConfig(t)
	client := &stubClient{
		bySubreddit: map[string][]reddit.Submission{
			"eldercare": {
				{ID: "a", Title: "Need help", Selftext: "for my mom", CreatedUTC: 1690000000,
					Permalink: "/r/eldercare/comments/a/need_help/"},
			},
		},
	}

	require.NoError(t, pipeline(context.Background(), cfg, newTestCollector(client, cfg)))

	data, err := os.ReadFile(cfg.Targets.CSV.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Need help")
}

func TestPipelinePropagatesFetchError(t *testing.T) {
	cfg := testPipelineConfig(t)
	client := &stubClient{err: fmt.Errorf("rate limited")}

	err := pipeline(context.Background(), cfg, newTestCollector(client, cfg))
	require.Error(t, err)

	// Nothing was flushed before the abort.
	_, statErr := os.Stat(cfg.Targets.CSV.Path)
	assert.True(t, os.IsNotExist(statErr))
}
