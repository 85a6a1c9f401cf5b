package book

import (
	"errors"
)

// ErrInvalidArgument is returned when generation parameters are out of range.
var ErrInvalidArgument = errors.New("invalid argument")

// Book represents a generated catalog entry. Index is its identity.
type Book struct {
	Index         int      `json:"index"`
	ISBN          string   `json:"isbn"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Publisher     string   `json:"publisher"`
	Likes         int      `json:"likes"`
	Reviews       []Review `json:"reviews"`
	CoverImageURL string   `json:"cover_image_url"`
}

// Review belongs to exactly one Book.
type Review struct {
	Text   string  `json:"text"`
	Author string  `json:"author"`
	Rating float64 `json:"rating"`
}
