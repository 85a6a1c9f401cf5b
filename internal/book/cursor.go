package book

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"bookstoretester/internal/locale"
)

// CursorData is the continuation state for infinite scroll: where the next
// page starts and the generation knobs it must keep using.
type CursorData struct {
	Next       int           `json:"next"`
	Locale     locale.Locale `json:"locale"`
	Seed       int32         `json:"seed"`
	AvgLikes   float64       `json:"likes"`
	AvgReviews float64       `json:"reviews"`
}

// CursorAfter returns the cursor for the page following p.
func CursorAfter(p Params) CursorData {
	return CursorData{
		Next:       p.StartIndex + p.Count,
		Locale:     p.Locale,
		Seed:       p.Seed,
		AvgLikes:   p.AvgLikes,
		AvgReviews: p.AvgReviews,
	}
}

// Params returns generation parameters for count books from the cursor position.
func (c CursorData) Params(count int) Params {
	return Params{
		StartIndex: c.Next,
		Count:      count,
		Locale:     c.Locale,
		Seed:       c.Seed,
		AvgLikes:   c.AvgLikes,
		AvgReviews: c.AvgReviews,
	}
}

// EncodeCursor encodes cursor data to a base64 string
func EncodeCursor(data CursorData) string {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(jsonBytes)
}

// DecodeCursor decodes a base64 cursor string to CursorData
func DecodeCursor(cursor string) (CursorData, error) {
	if cursor == "" {
		return CursorData{}, fmt.Errorf("%w: empty cursor", ErrInvalidArgument)
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return CursorData{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}

	var data CursorData
	if err := json.Unmarshal(decoded, &data); err != nil {
		return CursorData{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}
	if data.Next < 0 {
		return CursorData{}, fmt.Errorf("%w: cursor position is negative", ErrInvalidArgument)
	}
	return data, nil
}
