package book

import (
	"context"
	"io"

	"bookstoretester/internal/locale"
)

const exportChunk = 500

// Defaults fill request parameters the caller leaves unset.
type Defaults struct {
	Locale     locale.Locale
	Seed       int32
	AvgLikes   float64
	AvgReviews float64
	PageSize   int
}

// Service provides book generation over a fixed locale table.
type Service struct {
	table    *locale.Table
	defaults Defaults
}

// NewService creates a new book service.
func NewService(table *locale.Table, defaults Defaults) *Service {
	return &Service{table: table, defaults: defaults}
}

func (s *Service) Defaults() Defaults {
	return s.defaults
}

// Locales returns the locales the service can generate.
func (s *Service) Locales() []locale.Locale {
	return s.table.Locales()
}

// List returns the books described by p.
func (s *Service) List(ctx context.Context, p Params) ([]Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Generate(s.table, p)
}

// Get returns the single book at index, generated with p's seed, locale and averages.
func (s *Service) Get(ctx context.Context, p Params, index int) (Book, error) {
	p.StartIndex = index
	p.Count = 1
	books, err := s.List(ctx, p)
	if err != nil {
		return Book{}, err
	}
	return books[0], nil
}

// Export streams p's range as CSV to w, generating in chunks so large
// exports do not hold every book in memory. Nothing is written when p is
// invalid or its locale is not configured.
func (s *Service) Export(ctx context.Context, w io.Writer, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.table.Lookup(p.Locale); err != nil {
		return err
	}

	cw := NewCSVWriter(w)
	if err := cw.WriteHeader(); err != nil {
		return err
	}
	err := GenerateBatches(ctx, s.table, p, exportChunk, func(books []Book) error {
		return cw.Write(books...)
	})
	if err != nil {
		return err
	}
	return cw.Flush()
}
