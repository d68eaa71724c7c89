package collector

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"careminer/internal/config"
	"careminer/internal/filters"
	"careminer/internal/reddit"
	"careminer/internal/types"
)

// Origin prefixes every relative permalink returned by the API.
const Origin = "https://www.reddit.com"

// Client is the slice of the Reddit client the collector needs.
type Client interface {
	Authenticate(ctx context.Context) error
	Search(ctx context.Context, subreddit, query string, limit int) ([]reddit.Submission, error)
}

type Collector struct {
	client Client
	cfg    config.CollectorConfig
	chain  filters.Chain
	logger *slog.Logger
	out    io.Writer
}

type Option func(*Collector)

// WithOutput redirects the per-subreddit progress notices. Used in tests.
func WithOutput(out io.Writer) Option {
	return func(c *Collector) {
		c.out = out
	}
}

func WithFilters(chain filters.Chain) Option {
	return func(c *Collector) {
		c.chain = chain
	}
}

func New(client Client, cfg config.CollectorConfig, logger *slog.Logger, opts ...Option) *Collector {
	c := &Collector{
		client: client,
		cfg:    cfg,
		chain:  filters.Default(),
		logger: logger,
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Collect queries every configured subreddit in order and returns the
// accepted posts as one ordered slice: subreddit order first, then API
// order within each subreddit. Any subreddit's query error aborts the whole
// run; nothing collected so far is flushed anywhere.
func (c *Collector) Collect(ctx context.Context) ([]types.Post, error) {
	if err := c.client.Authenticate(ctx); err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	var posts []types.Post

	for _, name := range c.cfg.Subreddits {
		fmt.Fprintf(c.out, "Fetching posts from r/%s ...\n", name)

		submissions, err := c.client.Search(ctx, name, c.cfg.Query, c.cfg.Limit)
		if err != nil {
			return nil, fmt.Errorf("fetch r/%s: %w", name, err)
		}

		c.logger.Debug("retrieved submissions", "subreddit", name, "count", len(submissions))

		accepted := 0
		for _, s := range submissions {
			if ferr := c.chain.Apply(s); ferr != nil {
				c.logger.Debug("skipping submission", "subreddit", name, "id", s.ID, "reason", ferr.Reason)
				continue
			}

			posts = append(posts, types.Post{
				Subreddit:   name,
				ID:          s.ID,
				Title:       s.Title,
				Body:        s.Selftext,
				Score:       s.Score,
				NumComments: s.NumComments,
				CreatedUTC:  s.CreatedUTC,
				Permalink:   Origin + s.Permalink,
				Text:        filters.CombinedText(s.Title, s.Selftext),
			})
			accepted++
		}

		c.logger.Debug("finished subreddit", "subreddit", name, "accepted", accepted)
	}

	return posts, nil
}
