// Package datastore writes generated books to a standalone SQLite file
// that can be browsed with any SQLite client.
package datastore

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"bookstoretester/internal/book"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	locale TEXT NOT NULL,
	seed INTEGER NOT NULL,
	avg_likes REAL NOT NULL,
	avg_reviews REAL NOT NULL,
	book_index INTEGER NOT NULL,
	isbn TEXT NOT NULL,
	title TEXT NOT NULL,
	authors TEXT NOT NULL,
	publisher TEXT NOT NULL,
	likes INTEGER NOT NULL,
	review_count INTEGER NOT NULL,
	cover_image_url TEXT NOT NULL,
	PRIMARY KEY (locale, seed, avg_likes, avg_reviews, book_index)
);
CREATE TABLE IF NOT EXISTS reviews (
	locale TEXT NOT NULL,
	seed INTEGER NOT NULL,
	avg_likes REAL NOT NULL,
	avg_reviews REAL NOT NULL,
	book_index INTEGER NOT NULL,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	author TEXT NOT NULL,
	rating REAL NOT NULL,
	PRIMARY KEY (locale, seed, avg_likes, avg_reviews, book_index, position)
);`

// SQLiteStore stores generated books in a local SQLite database
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLiteStore instance
func NewSQLiteStore(dbPath string) *SQLiteStore {
	return &SQLiteStore{
		dbPath: dbPath,
	}
}

// Connect opens a connection to the SQLite database
func (s *SQLiteStore) Connect() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

// CreateSchema creates the books and reviews tables if they don't exist
func (s *SQLiteStore) CreateSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertBooks writes books generated with p, replacing rows already stored
// for the same parameters and index.
func (s *SQLiteStore) InsertBooks(p book.Params, books []book.Book) error {
	if len(books) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback if we don't commit - ignore errors as they're expected if transaction was committed
		_ = tx.Rollback()
	}()

	bookStmt, err := tx.Prepare(`INSERT OR REPLACE INTO books
		(locale, seed, avg_likes, avg_reviews, book_index, isbn, title, authors, publisher, likes, review_count, cover_image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = bookStmt.Close() }()

	clearStmt, err := tx.Prepare(`DELETE FROM reviews
		WHERE locale = ? AND seed = ? AND avg_likes = ? AND avg_reviews = ? AND book_index = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = clearStmt.Close() }()

	reviewStmt, err := tx.Prepare(`INSERT INTO reviews
		(locale, seed, avg_likes, avg_reviews, book_index, position, text, author, rating)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = reviewStmt.Close() }()

	tag := p.Locale.Tag()
	for _, b := range books {
		authors, err := json.Marshal(b.Authors)
		if err != nil {
			return fmt.Errorf("failed to encode authors: %w", err)
		}
		if _, err := bookStmt.Exec(tag, p.Seed, p.AvgLikes, p.AvgReviews, b.Index,
			b.ISBN, b.Title, string(authors), b.Publisher, b.Likes, len(b.Reviews), b.CoverImageURL); err != nil {
			return fmt.Errorf("failed to insert book %d: %w", b.Index, err)
		}
		if _, err := clearStmt.Exec(tag, p.Seed, p.AvgLikes, p.AvgReviews, b.Index); err != nil {
			return fmt.Errorf("failed to clear reviews of book %d: %w", b.Index, err)
		}
		for pos, r := range b.Reviews {
			if _, err := reviewStmt.Exec(tag, p.Seed, p.AvgLikes, p.AvgReviews, b.Index, pos, r.Text, r.Author, r.Rating); err != nil {
				return fmt.Errorf("failed to insert review %d of book %d: %w", pos, b.Index, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Books reads back the stored books in p's index range, in order.
func (s *SQLiteStore) Books(p book.Params) ([]book.Book, error) {
	tag := p.Locale.Tag()
	end := p.StartIndex + p.Count

	rows, err := s.db.Query(`SELECT book_index, isbn, title, authors, publisher, likes, cover_image_url
		FROM books
		WHERE locale = ? AND seed = ? AND avg_likes = ? AND avg_reviews = ? AND book_index >= ? AND book_index < ?
		ORDER BY book_index`, tag, p.Seed, p.AvgLikes, p.AvgReviews, p.StartIndex, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var books []book.Book
	pos := make(map[int]int)
	for rows.Next() {
		var (
			b       book.Book
			authors string
		)
		if err := rows.Scan(&b.Index, &b.ISBN, &b.Title, &authors, &b.Publisher, &b.Likes, &b.CoverImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		if err := json.Unmarshal([]byte(authors), &b.Authors); err != nil {
			return nil, fmt.Errorf("failed to decode authors of book %d: %w", b.Index, err)
		}
		b.Reviews = []book.Review{}
		pos[b.Index] = len(books)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reviews, err := s.db.Query(`SELECT book_index, text, author, rating
		FROM reviews
		WHERE locale = ? AND seed = ? AND avg_likes = ? AND avg_reviews = ? AND book_index >= ? AND book_index < ?
		ORDER BY book_index, position`, tag, p.Seed, p.AvgLikes, p.AvgReviews, p.StartIndex, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer func() { _ = reviews.Close() }()

	for reviews.Next() {
		var (
			index int
			r     book.Review
		)
		if err := reviews.Scan(&index, &r.Text, &r.Author, &r.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		if i, ok := pos[index]; ok {
			books[i].Reviews = append(books[i].Reviews, r)
		}
	}
	return books, reviews.Err()
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
