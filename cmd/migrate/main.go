package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"bookstoretester/internal/config"
	"bookstoretester/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("invalid configuration", err)
	}
	logging.Setup(cfg.LogLevel)

	if err := run(context.Background(), cfg, *command, *name); err != nil {
		fatal("migration failed", err)
	}
}

func run(ctx context.Context, cfg config.Config, command, name string) error {
	if command == "create" {
		if name == "" {
			return fmt.Errorf("name is required for 'create' command")
		}
		if err := goose.Create(nil, cfg.MigrationsDir, name, "sql"); err != nil {
			return fmt.Errorf("create migration: %w", err)
		}
		slog.Info("migration created", "name", name, "dir", cfg.MigrationsDir)
		return nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.UpContext(ctx, db, cfg.MigrationsDir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		slog.Info("migrations applied", "dir", cfg.MigrationsDir)
	case "down":
		if err := goose.DownContext(ctx, db, cfg.MigrationsDir); err != nil {
			return fmt.Errorf("roll back migration: %w", err)
		}
		slog.Info("migration rolled back", "dir", cfg.MigrationsDir)
	case "status":
		if err := goose.StatusContext(ctx, db, cfg.MigrationsDir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown command: %s. Use: up, down, status, create", command)
	}
	return nil
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
