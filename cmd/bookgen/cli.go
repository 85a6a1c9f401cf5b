package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"bookstoretester/internal/book"
	"bookstoretester/internal/config"
	"bookstoretester/internal/datastore"
	"bookstoretester/internal/locale"
	"bookstoretester/internal/publish"

	"github.com/alecthomas/kong"
)

const batchSize = 1000

type kafkaWriter interface {
	publish.MessageWriter
	io.Closer
}

var newKafkaWriter = func(brokers []string, topic string) kafkaWriter {
	return publish.NewWriter(brokers, topic)
}

// CLI represents the complete command structure for bookgen
type CLI struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"${log_level}"`

	CSV    CSVCmd    `cmd:"" name:"csv" help:"Write books as CSV"`
	SQLite SQLiteCmd `cmd:"" name:"sqlite" help:"Write books and reviews to a SQLite file"`
	Kafka  KafkaCmd  `cmd:"" help:"Publish one Kafka message per book"`
}

// GenerationFlags are shared by every subcommand.
type GenerationFlags struct {
	Locale  string  `short:"l" help:"Locale tag or name (en-US, de-DE, ja-JP, fr-FR, es-ES)" default:"${locale}"`
	Seed    int32   `short:"s" help:"Generation seed" default:"${seed}"`
	Start   int     `help:"Index of the first book" default:"0"`
	Count   int     `short:"n" help:"Number of books" default:"100"`
	Likes   float64 `help:"Average likes per book" default:"${likes}"`
	Reviews float64 `help:"Average reviews per book" default:"${reviews}"`
}

// CSVCmd represents the csv command
type CSVCmd struct {
	GenerationFlags `embed:""`
	Output          string `short:"o" help:"Output file, '-' for stdout" default:"-"`
}

// SQLiteCmd represents the sqlite command
type SQLiteCmd struct {
	GenerationFlags `embed:""`
	DB              string `help:"Path to SQLite database file" default:"./books.db"`
}

// KafkaCmd represents the kafka command
type KafkaCmd struct {
	GenerationFlags `embed:""`
	Brokers         []string `help:"Kafka bootstrap brokers" default:"localhost:9092" sep:","`
	Topic           string   `help:"Destination topic" default:"books"`
}

type runEnv struct {
	ctx    context.Context
	table  *locale.Table
	stdout io.Writer
}

func vars(cfg config.Config) kong.Vars {
	return kong.Vars{
		"log_level": cfg.LogLevel,
		"locale":    cfg.DefaultLocale.Tag(),
		"seed":      strconv.FormatInt(int64(cfg.DefaultSeed), 10),
		"likes":     strconv.FormatFloat(cfg.DefaultAvgLikes, 'g', -1, 64),
		"reviews":   strconv.FormatFloat(cfg.DefaultAvgReviews, 'g', -1, 64),
	}
}

// Params resolves the flags into validated generation parameters.
func (g GenerationFlags) Params() (book.Params, error) {
	l, err := locale.Parse(g.Locale)
	if err != nil {
		return book.Params{}, err
	}
	p := book.Params{
		StartIndex: g.Start,
		Count:      g.Count,
		Locale:     l,
		Seed:       g.Seed,
		AvgLikes:   g.Likes,
		AvgReviews: g.Reviews,
	}
	return p, p.Validate()
}

func (c *CSVCmd) Run(env *runEnv) error {
	p, err := c.Params()
	if err != nil {
		return err
	}

	w := env.stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	svc := book.NewService(env.table, book.Defaults{})
	if err := svc.Export(env.ctx, w, p); err != nil {
		return err
	}
	slog.Info("csv written", "output", c.Output, "books", p.Count, "locale", p.Locale.Tag(), "seed", p.Seed)
	return nil
}

func (c *SQLiteCmd) Run(env *runEnv) error {
	p, err := c.Params()
	if err != nil {
		return err
	}

	store := datastore.NewSQLiteStore(c.DB)
	if err := store.Connect(); err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	if err := store.CreateSchema(); err != nil {
		return err
	}

	err = book.GenerateBatches(env.ctx, env.table, p, batchSize, func(books []book.Book) error {
		return store.InsertBooks(p, books)
	})
	if err != nil {
		return err
	}
	slog.Info("sqlite written", "db", c.DB, "books", p.Count, "locale", p.Locale.Tag(), "seed", p.Seed)
	return nil
}

func (c *KafkaCmd) Run(env *runEnv) error {
	p, err := c.Params()
	if err != nil {
		return err
	}

	w := newKafkaWriter(c.Brokers, c.Topic)
	defer func() { _ = w.Close() }()
	publisher := publish.NewPublisher(w)

	published := 0
	err = book.GenerateBatches(env.ctx, env.table, p, batchSize, func(books []book.Book) error {
		if err := publisher.Publish(env.ctx, p, books); err != nil {
			return err
		}
		published += len(books)
		slog.Debug("published batch", "topic", c.Topic, "published", published, "of", p.Count)
		return nil
	})
	if err != nil {
		return err
	}
	slog.Info("kafka messages published", "topic", c.Topic, "books", published)
	return nil
}
