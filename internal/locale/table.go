package locale

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrConfiguration is returned when a locale has no usable entry in a Table.
var ErrConfiguration = errors.New("locale configuration error")

// Data holds the word lists for one locale. Every list except MiddleInitials
// must be non-empty.
type Data struct {
	FirstNames     []string
	LastNames      []string
	MiddleInitials []string
	TitleWords     []string
	Publishers     []string
	ReviewTexts    []string
}

func (d Data) validate() error {
	lists := []struct {
		name  string
		words []string
	}{
		{"first names", d.FirstNames},
		{"last names", d.LastNames},
		{"title words", d.TitleWords},
		{"publishers", d.Publishers},
		{"review texts", d.ReviewTexts},
	}
	for _, l := range lists {
		if len(l.words) == 0 {
			return fmt.Errorf("no %s", l.name)
		}
	}
	return nil
}

func (d Data) clone() Data {
	return Data{
		FirstNames:     slices.Clone(d.FirstNames),
		LastNames:      slices.Clone(d.LastNames),
		MiddleInitials: slices.Clone(d.MiddleInitials),
		TitleWords:     slices.Clone(d.TitleWords),
		Publishers:     slices.Clone(d.Publishers),
		ReviewTexts:    slices.Clone(d.ReviewTexts),
	}
}

// Table maps locales to their word lists. It is immutable after construction
// and safe for concurrent readers.
type Table struct {
	entries map[Locale]Data
}

// New builds a Table from entries, rejecting any entry with an empty required list.
func New(entries map[Locale]Data) (*Table, error) {
	t := &Table{entries: make(map[Locale]Data, len(entries))}
	for l, d := range entries {
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfiguration, l, err)
		}
		t.entries[l] = d.clone()
	}
	return t, nil
}

// Builtin returns a fresh Table holding all five bundled locales.
func Builtin() *Table {
	t, err := New(map[Locale]Data{
		EnglishUS: englishUS,
		German:    german,
		Japanese:  japanese,
		French:    french,
		Spanish:   spanish,
	})
	if err != nil {
		panic(err)
	}
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide builtin table, building it on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = Builtin()
	})
	return defaultTable
}

// Lookup returns a copy of the word lists for l.
func (t *Table) Lookup(l Locale) (Data, error) {
	d, ok := t.entries[l]
	if !ok {
		return Data{}, fmt.Errorf("%w: no entry for %s", ErrConfiguration, l)
	}
	return d.clone(), nil
}

// Locales returns the registered locales in declaration order.
func (t *Table) Locales() []Locale {
	var out []Locale
	for _, l := range All() {
		if _, ok := t.entries[l]; ok {
			out = append(out, l)
		}
	}
	return out
}
