package csv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"careminer/internal/types"
)

// Header is the fixed column order of the export file.
var Header = []string{
	"subreddit",
	"id",
	"title",
	"body",
	"score",
	"num_comments",
	"created_utc",
	"permalink",
	"text",
}

type Target struct {
	name string
	path string
	out  io.Writer
}

type Option func(*Target)

// WithOutput redirects the confirmation message. Used in tests.
func WithOutput(out io.Writer) Option {
	return func(t *Target) {
		t.out = out
	}
}

func New(name, path string, opts ...Option) *Target {
	t := &Target{
		name: name,
		path: path,
		out:  os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Target) Name() string {
	return t.name
}

// Export writes one row per post, header first, overwriting any existing
// file at the configured path. The file is flushed and closed before the
// confirmation message is printed.
func (t *Target) Export(ctx context.Context, posts []types.Post) error {
	file, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", t.path, err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(Header); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, post := range posts {
		if err := writer.Write(row(post)); err != nil {
			_ = file.Close()
			return fmt.Errorf("failed to write row for %s: %w", post.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to flush %s: %w", t.path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", t.path, err)
	}

	fmt.Fprintf(t.out, "Saved %d posts to %s\n", len(posts), t.path)
	return nil
}

func row(post types.Post) []string {
	return []string{
		post.Subreddit,
		post.ID,
		post.Title,
		post.Body,
		strconv.Itoa(post.Score),
		strconv.Itoa(post.NumComments),
		strconv.FormatFloat(post.CreatedUTC, 'f', -1, 64),
		post.Permalink,
		post.Text,
	}
}
