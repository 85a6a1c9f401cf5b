package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnknownLocale is returned when a string does not name a supported locale.
var ErrUnknownLocale = errors.New("unknown locale")

// Locale selects the word lists used for generation.
type Locale int

const (
	EnglishUS Locale = iota
	German
	Japanese
	French
	Spanish
)

type descriptor struct {
	name string
	tag  language.Tag
}

var descriptors = [...]descriptor{
	EnglishUS: {name: "EnglishUS", tag: language.MustParse("en-US")},
	German:    {name: "German", tag: language.MustParse("de-DE")},
	Japanese:  {name: "Japanese", tag: language.MustParse("ja-JP")},
	French:    {name: "French", tag: language.MustParse("fr-FR")},
	Spanish:   {name: "Spanish", tag: language.MustParse("es-ES")},
}

var matcher = language.NewMatcher(supportedTags())

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(descriptors))
	for i, d := range descriptors {
		tags[i] = d.tag
	}
	return tags
}

// All returns every supported locale in declaration order.
func All() []Locale {
	out := make([]Locale, len(descriptors))
	for i := range descriptors {
		out[i] = Locale(i)
	}
	return out
}

// Valid reports whether l is one of the declared locales.
func (l Locale) Valid() bool {
	return l >= 0 && int(l) < len(descriptors)
}

// String returns the enum name, e.g. "German".
func (l Locale) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Locale(%d)", int(l))
	}
	return descriptors[l].name
}

// Tag returns the BCP 47 tag, e.g. "de-DE".
func (l Locale) Tag() string {
	if !l.Valid() {
		return ""
	}
	return descriptors[l].tag.String()
}

func (l Locale) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLocale, int(l))
	}
	return []byte(l.Tag()), nil
}

func (l *Locale) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Parse accepts an enum name ("EnglishUS", case-insensitive) or a BCP 47 tag.
// Tags are resolved by base language, so "de", "de-AT" and "de-DE" all map to German.
func Parse(s string) (Locale, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrUnknownLocale)
	}
	for i, d := range descriptors {
		if strings.EqualFold(s, d.name) {
			return Locale(i), nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, s)
	}
	base, _ := tag.Base()
	for i, d := range descriptors {
		if b, _ := d.tag.Base(); b == base {
			return Locale(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLocale, s)
}

// Negotiate picks the best supported locale for an Accept-Language header,
// returning fallback when the header is empty, malformed or matches nothing.
func Negotiate(acceptLanguage string, fallback Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}
	return Locale(index)
}
