package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"careminer/internal/types"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Target appends the run to a local archive database so successive research
// runs accumulate a corpus. Inserts are idempotent per (id, subreddit); the
// CSV path never consults this archive.
type Target struct {
	name string
	path string
}

func New(name, path string) *Target {
	return &Target{
		name: name,
		path: path,
	}
}

func (t *Target) Name() string {
	return t.name
}

func (t *Target) Export(ctx context.Context, posts []types.Post) error {
	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL", t.path)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(conn); err != nil {
		return err
	}

	inserted, err := t.insert(ctx, conn, posts)
	if err != nil {
		return err
	}

	slog.Info("archived posts", "target", t.name, "path", t.path, "inserted", inserted, "total", len(posts))
	return nil
}

func runMigrations(conn *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(conn, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

func (t *Target) insert(ctx context.Context, conn *sql.DB, posts []types.Post) (int64, error) {
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO posts (id, subreddit, title, body, score, num_comments, created_utc, permalink, text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, subreddit) DO NOTHING
	`

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	var inserted int64
	for _, post := range posts {
		result, err := stmt.ExecContext(ctx,
			post.ID,
			post.Subreddit,
			post.Title,
			post.Body,
			post.Score,
			post.NumComments,
			post.CreatedUTC,
			post.Permalink,
			post.Text,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert post %s: %w", post.ID, err)
		}

		if rows, err := result.RowsAffected(); err == nil {
			inserted += rows
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return inserted, nil
}
