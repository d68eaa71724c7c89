package targets

import (
	"context"

	"careminer/internal/config"
	csvpkg "careminer/internal/targets/csv"
	feedpkg "careminer/internal/targets/feed"
	sqlitepkg "careminer/internal/targets/sqlite"
	"careminer/internal/types"
)

// Target receives the complete ordered run in one batch. Targets never see
// an empty run; the caller short-circuits that case.
type Target interface {
	Name() string
	Export(ctx context.Context, posts []types.Post) error
}

// FromConfig builds the enabled targets in a fixed order: csv, feed, sqlite.
func FromConfig(cfg config.TargetsConfig) []Target {
	var targets []Target

	if cfg.CSV.Enabled {
		targets = append(targets, csvpkg.New("csv", cfg.CSV.Path))
	}

	if cfg.Feed.Enabled {
		targets = append(targets, feedpkg.New("feed", feedpkg.Config{
			Path:  cfg.Feed.Path,
			Title: cfg.Feed.Title,
			Link:  cfg.Feed.Link,
		}))
	}

	if cfg.SQLite.Enabled {
		targets = append(targets, sqlitepkg.New("sqlite", cfg.SQLite.Path))
	}

	return targets
}
