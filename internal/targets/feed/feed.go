package feed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gorilla/feeds"

	"careminer/internal/types"
)

type Config struct {
	Path  string
	Title string
	Link  string
}

// Target renders the collected posts as an Atom file for feed-reader review.
type Target struct {
	name   string
	config Config
}

func New(name string, config Config) *Target {
	if config.Title == "" {
		config.Title = "Caregiving posts"
	}

	return &Target{
		name:   name,
		config: config,
	}
}

func (t *Target) Name() string {
	return t.name
}

func (t *Target) Export(ctx context.Context, posts []types.Post) error {
	feed := &feeds.Feed{
		Title:       t.config.Title,
		Link:        &feeds.Link{Href: t.config.Link},
		Description: "Collected caregiving-related posts",
		Created:     time.Now(),
	}

	for _, post := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          post.Permalink,
			Title:       post.Title,
			Link:        &feeds.Link{Href: post.Permalink},
			Description: post.Text,
			Author:      &feeds.Author{Name: "r/" + post.Subreddit},
			Created:     time.Unix(int64(post.CreatedUTC), 0).UTC(),
		})
	}

	atom, err := feed.ToAtom()
	if err != nil {
		return fmt.Errorf("failed to render atom feed: %w", err)
	}

	if err := os.WriteFile(t.config.Path, []byte(atom), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", t.config.Path, err)
	}

	return nil
}
