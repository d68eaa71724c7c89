package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"careminer/internal/collector"
	"careminer/internal/config"
	"careminer/internal/reddit"
	"careminer/internal/targets"
	"careminer/internal/types"
)

var (
	configPath = flag.String("config", "config.toml", "Path to configuration file")
)

func main() {
	flag.Parse()

	// Credentials may come from a local .env; absence is fine.
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived signal: %v\n", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		var missing *types.MissingEnvError
		if errors.As(err, &missing) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	creds, err := config.CredentialsFromEnv()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	client := reddit.New(creds)

	return pipeline(ctx, cfg, collector.New(client, cfg.Collector, logger))
}

// pipeline runs one collect-and-export cycle. An empty run is a success:
// the informational message is printed and no target is invoked, so no
// file is created or overwritten.
func pipeline(ctx context.Context, cfg *config.Config, col *collector.Collector) error {
	posts, err := col.Collect(ctx)
	if err != nil {
		return err
	}

	if len(posts) == 0 {
		fmt.Println("No posts collected. Try adjusting the search query or limits.")
		return nil
	}

	for _, target := range targets.FromConfig(cfg.Targets) {
		if err := target.Export(ctx, posts); err != nil {
			return fmt.Errorf("target %s failed: %w", target.Name(), err)
		}
	}

	return nil
}
