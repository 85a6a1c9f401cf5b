package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bookstoretester/internal/book"
	"bookstoretester/internal/config"
	"bookstoretester/internal/locale"
	"bookstoretester/internal/logging"
	"bookstoretester/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

// batchSize bounds how many generated books are held in memory per copy.
const batchSize = 1000

type options struct {
	locale  string
	seed    int64
	start   int
	count   int
	likes   float64
	reviews float64
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("invalid configuration", err)
	}
	logging.Setup(cfg.LogLevel)

	var opts options
	flag.StringVar(&opts.locale, "locale", cfg.DefaultLocale.Tag(), "Locale tag or name")
	flag.Int64Var(&opts.seed, "seed", int64(cfg.DefaultSeed), "Generation seed")
	flag.IntVar(&opts.start, "start", 0, "First book index")
	flag.IntVar(&opts.count, "count", 10000, "Number of books to generate")
	flag.Float64Var(&opts.likes, "likes", cfg.DefaultAvgLikes, "Average likes per book")
	flag.Float64Var(&opts.reviews, "reviews", cfg.DefaultAvgReviews, "Average reviews per book")
	flag.Parse()

	params, err := opts.params()
	if err != nil {
		fatal("invalid flags", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		fatal("failed to connect to database", err)
	}
	defer pool.Close()

	if err := seed(ctx, store.NewBookPG(pool), locale.Default(), params); err != nil {
		fatal("seed failed", err)
	}
}

func (o options) params() (book.Params, error) {
	l, err := locale.Parse(o.locale)
	if err != nil {
		return book.Params{}, err
	}
	if o.seed < -1<<31 || o.seed > 1<<31-1 {
		return book.Params{}, fmt.Errorf("seed %d does not fit in 32 bits", o.seed)
	}
	return book.Params{
		StartIndex: o.start,
		Count:      o.count,
		Locale:     l,
		Seed:       int32(o.seed),
		AvgLikes:   o.likes,
		AvgReviews: o.reviews,
	}, nil
}

type fixtureStore interface {
	CreateRun(ctx context.Context, run *store.Run) error
	InsertBooks(ctx context.Context, runID int64, books []book.Book) (int64, error)
	DeleteRun(ctx context.Context, id int64) error
}

func seed(ctx context.Context, repo fixtureStore, table *locale.Table, p book.Params) error {
	// Reject bad parameters before recording a run.
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := table.Lookup(p.Locale); err != nil {
		return err
	}

	run := store.RunFor(p)
	if err := repo.CreateRun(ctx, &run); err != nil {
		return err
	}
	slog.Info("generating books", "run_id", run.ID, "locale", p.Locale.Tag(), "seed", p.Seed, "count", p.Count)

	began := time.Now()
	var total int64
	err := book.GenerateBatches(ctx, table, p, batchSize, func(books []book.Book) error {
		n, err := repo.InsertBooks(ctx, run.ID, books)
		if err != nil {
			return err
		}
		total += n
		slog.Info("inserted batch", "run_id", run.ID, "inserted", total, "of", p.Count)
		return nil
	})
	if err != nil {
		// Drop the partial run; ctx may already be cancelled.
		if delErr := repo.DeleteRun(context.WithoutCancel(ctx), run.ID); delErr != nil {
			slog.Error("failed to remove partial run", "run_id", run.ID, "error", delErr)
		} else {
			slog.Warn("removed partial run", "run_id", run.ID, "inserted", total)
		}
		return err
	}

	slog.Info("seed complete", "run_id", run.ID, "books", total, "duration_ms", time.Since(began).Milliseconds())
	return nil
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
