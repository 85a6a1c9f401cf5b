package main

import (
	"context"
	"log/slog"
	"os"

	"bookstoretester/internal/config"
	"bookstoretester/internal/locale"
	"bookstoretester/internal/logging"

	"github.com/alecthomas/kong"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.SetDefault(logging.New(os.Stderr, "info"))
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("bookgen"),
		kong.Description("Generate deterministic synthetic book catalogs as CSV, SQLite or Kafka messages."),
		kong.UsageOnError(),
		vars(cfg),
	)

	// stdout may carry CSV, so logs go to stderr.
	slog.SetDefault(logging.New(os.Stderr, cli.LogLevel))

	err = ctx.Run(&runEnv{
		ctx:    context.Background(),
		table:  locale.Default(),
		stdout: os.Stdout,
	})
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
