package book

//go:generate mockgen -source=ports.go -destination=mock_catalog.go -package=book

import (
	"context"
	"io"

	"bookstoretester/internal/locale"
)

// Catalog is the contract the HTTP layer needs from the generator.
type Catalog interface {
	Defaults() Defaults
	Locales() []locale.Locale
	List(ctx context.Context, p Params) ([]Book, error)
	Get(ctx context.Context, p Params, index int) (Book, error)
	Export(ctx context.Context, w io.Writer, p Params) error
}

var _ Catalog = (*Service)(nil)
