package book

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bookstoretester/internal/locale"
	"bookstoretester/internal/random"
)

// Params selects a contiguous range of books and the knobs that shape them.
type Params struct {
	StartIndex int
	Count      int
	Locale     locale.Locale
	Seed       int32
	AvgLikes   float64
	AvgReviews float64
}

// maxAverage keeps the drawn counts (at most twice the average) within int32.
const maxAverage = math.MaxInt32 / 2

// Validate reports ErrInvalidArgument for a negative range, a range past the
// 32-bit index space, or an average outside [0, maxAverage].
func (p Params) Validate() error {
	if p.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidArgument, p.Count)
	}
	if p.StartIndex < 0 {
		return fmt.Errorf("%w: start index must not be negative, got %d", ErrInvalidArgument, p.StartIndex)
	}
	if int64(p.StartIndex)+int64(p.Count) > math.MaxInt32+1 {
		return fmt.Errorf("%w: range [%d, %d+%d) exceeds the 32-bit index space", ErrInvalidArgument, p.StartIndex, p.StartIndex, p.Count)
	}
	if !validAverage(p.AvgLikes) {
		return fmt.Errorf("%w: average likes must be between 0 and %d, got %v", ErrInvalidArgument, maxAverage, p.AvgLikes)
	}
	if !validAverage(p.AvgReviews) {
		return fmt.Errorf("%w: average reviews must be between 0 and %d, got %v", ErrInvalidArgument, maxAverage, p.AvgReviews)
	}
	return nil
}

func validAverage(v float64) bool {
	return v >= 0 && v <= maxAverage
}

// Generate returns books for indices [p.StartIndex, p.StartIndex+p.Count) in order.
// Each book depends only on (seed, index, locale, averages), so pages can be
// requested in any order and always agree at their boundaries.
func Generate(table *locale.Table, p Params) ([]Book, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	words, err := table.Lookup(p.Locale)
	if err != nil {
		return nil, err
	}

	books := make([]Book, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		books = append(books, generateOne(words, p, p.StartIndex+i))
	}
	return books, nil
}

// GenerateBatches generates p's range in consecutive batches of at most size
// books, calling fn for each in index order. It stops at the first error,
// including cancellation of ctx between batches.
func GenerateBatches(ctx context.Context, table *locale.Table, p Params, size int, fn func([]Book) error) error {
	if size < 1 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidArgument, size)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := table.Lookup(p.Locale); err != nil {
		return err
	}

	end := p.StartIndex + p.Count
	for start := p.StartIndex; start < end; start += size {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := p
		batch.StartIndex = start
		batch.Count = min(size, end-start)

		books, err := Generate(table, batch)
		if err != nil {
			return err
		}
		if err := fn(books); err != nil {
			return err
		}
	}
	return nil
}

// CombineSeed derives the per-book stream seed. Arithmetic wraps at 32 bits.
func CombineSeed(seed int32, index int) int32 {
	return seed*31 + int32(index)*17
}

var coverPalette = [...]string{"FF6B6B", "4ECDC4", "45B7D1", "96CEB4", "FFEAA7", "DDA0DD", "98D8C8", "F7DC6F"}

// CoverImageURL is a pure function of the index; the seed never affects it.
func CoverImageURL(index int) string {
	color := coverPalette[index%len(coverPalette)]
	return fmt.Sprintf("https://via.placeholder.com/300x400/%s/FFFFFF?text=Book+%d", color, index)
}

// generateOne consumes the stream in a fixed order. Changing the order of
// any draw below changes every book after it.
func generateOne(words locale.Data, p Params, index int) Book {
	stream := random.New(CombineSeed(p.Seed, index))

	b := Book{
		Index:         index,
		ISBN:          isbn(stream),
		Title:         title(stream, words),
		Authors:       authors(stream, words),
		Publisher:     stream.Pick(words.Publishers),
		CoverImageURL: CoverImageURL(index),
	}
	b.Likes = drawCount(stream, p.AvgLikes)
	b.Reviews = reviews(stream, words, p.AvgReviews)
	return b
}

func isbn(s *random.Stream) string {
	var sb strings.Builder
	sb.WriteString("978-")
	sb.WriteString(strconv.Itoa(s.IntRange(0, 10)))
	sb.WriteByte('-')
	sb.WriteString(strconv.Itoa(s.IntRange(10, 100)))
	sb.WriteByte('-')
	sb.WriteString(strconv.Itoa(s.IntRange(10000, 100000)))
	sb.WriteByte('-')
	sb.WriteString(strconv.Itoa(s.IntRange(0, 10)))
	return sb.String()
}

func title(s *random.Stream, words locale.Data) string {
	n := s.IntRange(1, 4)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s.Pick(words.TitleWords)
	}
	return strings.Join(parts, " ")
}

func authors(s *random.Stream, words locale.Data) []string {
	n := s.IntRange(1, 4)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		first := s.Pick(words.FirstNames)
		last := s.Pick(words.LastNames)

		// The 0..9 draw happens even when the locale has no initials.
		if s.IntN(10) < 3 && len(words.MiddleInitials) > 0 {
			initial := s.Pick(words.MiddleInitials)
			out = append(out, first+" "+initial+". "+last)
			continue
		}
		out = append(out, first+" "+last)
	}
	return out
}

func reviews(s *random.Stream, words locale.Data, avg float64) []Review {
	n := drawCount(s, avg)
	out := make([]Review, 0, n)
	for i := 0; i < n; i++ {
		text := s.Pick(words.ReviewTexts)
		author := s.Pick(words.FirstNames) + " " + s.Pick(words.LastNames)
		rating := roundTenths(s.Float64()*4 + 1)
		out = append(out, Review{Text: text, Author: author, Rating: rating})
	}
	return out
}

// drawCount turns an average into a non-negative count. A zero average
// consumes no draw.
func drawCount(s *random.Stream, avg float64) int {
	switch {
	case avg == 0:
		return 0
	case avg >= 1:
		return int(math.RoundToEven(s.Float64() * avg * 2))
	default:
		if s.Float64() < avg {
			return 1
		}
		return 0
	}
}

// roundTenths rounds half to even at one decimal place.
func roundTenths(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
