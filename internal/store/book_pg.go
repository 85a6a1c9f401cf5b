package store

// Fixture persistence (Postgres)

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstoretester/internal/book"
	"bookstoretester/internal/locale"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRunNotFound = errors.New("generation run not found")

const defaultTimeout = 30 * time.Second

// Run records the parameters a batch of stored books was generated with.
type Run struct {
	ID         int64
	Locale     locale.Locale
	Seed       int32
	AvgLikes   float64
	AvgReviews float64
	StartIndex int
	Count      int
	CreatedAt  time.Time
}

// RunFor describes a run over p's range.
func RunFor(p book.Params) Run {
	return Run{
		Locale:     p.Locale,
		Seed:       p.Seed,
		AvgLikes:   p.AvgLikes,
		AvgReviews: p.AvgReviews,
		StartIndex: p.StartIndex,
		Count:      p.Count,
	}
}

// Params returns the generation parameters that reproduce the run.
func (r Run) Params() book.Params {
	return book.Params{
		StartIndex: r.StartIndex,
		Count:      r.Count,
		Locale:     r.Locale,
		Seed:       r.Seed,
		AvgLikes:   r.AvgLikes,
		AvgReviews: r.AvgReviews,
	}
}

type BookPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db, timeout: defaultTimeout}
}

func (r *BookPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// CreateRun inserts run and fills in its ID and CreatedAt.
func (r *BookPG) CreateRun(ctx context.Context, run *Run) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		INSERT INTO generation_runs (locale, seed, avg_likes, avg_reviews, start_index, book_count)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		run.Locale.Tag(), run.Seed, run.AvgLikes, run.AvgReviews, run.StartIndex, run.Count,
	).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// GetRun loads a run by ID.
func (r *BookPG) GetRun(ctx context.Context, id int64) (Run, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT id, locale, seed, avg_likes, avg_reviews, start_index, book_count, created_at
		FROM generation_runs
		WHERE id = $1`

	var (
		run Run
		tag string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&run.ID, &tag, &run.Seed, &run.AvgLikes, &run.AvgReviews, &run.StartIndex, &run.Count, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Run{}, ErrRunNotFound
		}
		return Run{}, fmt.Errorf("get run: %w", err)
	}
	if run.Locale, err = locale.Parse(tag); err != nil {
		return Run{}, fmt.Errorf("get run %d: %w", id, err)
	}
	return run, nil
}

// InsertBooks bulk-loads books and their reviews under runID in one
// transaction and returns the number of book rows copied.
func (r *BookPG) InsertBooks(ctx context.Context, runID int64, books []book.Book) (int64, error) {
	if len(books) == 0 {
		return 0, nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"generated_books"},
		[]string{"run_id", "book_index", "isbn", "title", "authors", "publisher", "likes", "cover_image_url"},
		pgx.CopyFromRows(bookRows(runID, books)),
	)
	if err != nil {
		return 0, fmt.Errorf("copy books: %w", err)
	}

	if rows := reviewRows(runID, books); len(rows) > 0 {
		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"generated_reviews"},
			[]string{"run_id", "book_index", "position", "text", "author", "rating"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return 0, fmt.Errorf("copy reviews: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return n, nil
}

// ListBooks returns up to limit stored books of a run in index order,
// reviews included.
func (r *BookPG) ListBooks(ctx context.Context, runID int64, limit, offset int) ([]book.Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const booksSQL = `
		SELECT book_index, isbn, title, authors, publisher, likes, cover_image_url
		FROM generated_books
		WHERE run_id = $1
		ORDER BY book_index
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, booksSQL, runID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []book.Book
	byIndex := make(map[int]int)
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(&b.Index, &b.ISBN, &b.Title, &b.Authors, &b.Publisher, &b.Likes, &b.CoverImageURL); err != nil {
			return nil, err
		}
		b.Reviews = []book.Review{}
		byIndex[b.Index] = len(books)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return books, nil
	}

	const reviewsSQL = `
		SELECT book_index, text, author, rating
		FROM generated_reviews
		WHERE run_id = $1 AND book_index BETWEEN $2 AND $3
		ORDER BY book_index, position`

	revs, err := r.db.Query(ctx, reviewsSQL, runID, books[0].Index, books[len(books)-1].Index)
	if err != nil {
		return nil, err
	}
	defer revs.Close()

	for revs.Next() {
		var (
			index int
			rv    book.Review
		)
		if err := revs.Scan(&index, &rv.Text, &rv.Author, &rv.Rating); err != nil {
			return nil, err
		}
		if i, ok := byIndex[index]; ok {
			books[i].Reviews = append(books[i].Reviews, rv)
		}
	}
	return books, revs.Err()
}

// DeleteRun removes a run; its books and reviews cascade.
func (r *BookPG) DeleteRun(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM generation_runs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRunNotFound
	}
	return nil
}

func bookRows(runID int64, books []book.Book) [][]any {
	rows := make([][]any, 0, len(books))
	for _, b := range books {
		rows = append(rows, []any{runID, b.Index, b.ISBN, b.Title, b.Authors, b.Publisher, b.Likes, b.CoverImageURL})
	}
	return rows
}

func reviewRows(runID int64, books []book.Book) [][]any {
	var rows [][]any
	for _, b := range books {
		for pos, rv := range b.Reviews {
			rows = append(rows, []any{runID, b.Index, pos, rv.Text, rv.Author, rv.Rating})
		}
	}
	return rows
}
