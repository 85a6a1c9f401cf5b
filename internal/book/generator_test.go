package book

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"bookstoretester/internal/locale"
	"bookstoretester/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englishParams(start, count int) Params {
	return Params{
		StartIndex: start,
		Count:      count,
		Locale:     locale.EnglishUS,
		Seed:       42,
		AvgLikes:   2.0,
		AvgReviews: 1.0,
	}
}

func TestGenerate_PinnedFixture(t *testing.T) {
	books, err := Generate(locale.Default(), englishParams(0, 3))
	require.NoError(t, err)

	want := []Book{
		{
			Index:     0,
			ISBN:      "978-9-86-86534-4",
			Title:     "Legend",
			Authors:   []string{"Karen Johnson"},
			Publisher: "Cambridge University Press",
			Likes:     4,
			Reviews: []Review{
				{Text: "A powerful story that explores complex human emotions with grace.", Author: "David Jones", Rating: 1.7},
			},
			CoverImageURL: "https://via.placeholder.com/300x400/FF6B6B/FFFFFF?text=Book+0",
		},
		{
			Index:     1,
			ISBN:      "978-8-85-75986-0",
			Title:     "Brave Flower Silver",
			Authors:   []string{"Karen G. Johnson"},
			Publisher: "Vintage Books",
			Likes:     1,
			Reviews: []Review{
				{Text: "Beautifully written with rich descriptions and compelling dialogue.", Author: "Lisa Lopez", Rating: 1.2},
				{Text: "An absolutely captivating read that kept me turning pages late into the night.", Author: "Susan Ramirez", Rating: 4.3},
			},
			CoverImageURL: "https://via.placeholder.com/300x400/4ECDC4/FFFFFF?text=Book+1",
		},
		{
			Index:     2,
			ISBN:      "978-6-84-65438-7",
			Title:     "Hidden Mountain",
			Authors:   []string{"Linda Ramirez", "Jessica Williams", "Robert Lopez"},
			Publisher: "Wiley",
			Likes:     3,
			Reviews: []Review{
				{Text: "Beautifully written with rich descriptions and compelling dialogue.", Author: "Christopher White", Rating: 4.0},
			},
			CoverImageURL: "https://via.placeholder.com/300x400/45B7D1/FFFFFF?text=Book+2",
		},
	}
	assert.Equal(t, want, books)
}

func TestGenerate_JapaneseFixture(t *testing.T) {
	books, err := Generate(locale.Default(), Params{
		StartIndex: 0,
		Count:      1,
		Locale:     locale.Japanese,
		Seed:       7,
		AvgLikes:   0.5,
		AvgReviews: 3.0,
	})
	require.NoError(t, err)
	require.Len(t, books, 1)

	b := books[0]
	assert.Equal(t, "978-0-54-50357-8", b.ISBN)
	assert.Equal(t, "雪", b.Title)
	assert.Equal(t, []string{"Tomoko Hashimoto"}, b.Authors)
	assert.Equal(t, "新潮社", b.Publisher)
	assert.Equal(t, 0, b.Likes)
	require.Len(t, b.Reviews, 5)
	assert.Equal(t, Review{Text: "美しい文章と説得力のある対話で綴られています。", Author: "Haruki Inoue", Rating: 1.3}, b.Reviews[0])
	assert.Equal(t, 3.2, b.Reviews[4].Rating)
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, l := range locale.All() {
		p := Params{StartIndex: 100, Count: 25, Locale: l, Seed: -913, AvgLikes: 7.5, AvgReviews: 2.5}

		first, err := Generate(locale.Default(), p)
		require.NoError(t, err)
		second, err := Generate(locale.Builtin(), p)
		require.NoError(t, err)

		assert.Equal(t, first, second, l.String())
		assert.Equal(t, ExportCSV(first), ExportCSV(second))
	}
}

func TestGenerate_IndexContinuity(t *testing.T) {
	books, err := Generate(locale.Default(), englishParams(37, 12))
	require.NoError(t, err)
	require.Len(t, books, 12)
	for i, b := range books {
		assert.Equal(t, 37+i, b.Index)
	}
}

func TestGenerate_PagesAgreeAtBoundaries(t *testing.T) {
	all, err := Generate(locale.Default(), englishParams(0, 30))
	require.NoError(t, err)

	var paged []Book
	for start := 0; start < 30; start += 10 {
		page, err := Generate(locale.Default(), englishParams(start, 10))
		require.NoError(t, err)
		paged = append(paged, page...)
	}
	assert.Equal(t, all, paged)
}

func TestGenerate_ZeroCount(t *testing.T) {
	books, err := Generate(locale.Default(), englishParams(5, 0))
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestGenerate_CoverURLIgnoresSeed(t *testing.T) {
	a, err := Generate(locale.Default(), Params{StartIndex: 0, Count: 16, Locale: locale.EnglishUS, Seed: 1})
	require.NoError(t, err)
	b, err := Generate(locale.Default(), Params{StartIndex: 0, Count: 16, Locale: locale.EnglishUS, Seed: 2})
	require.NoError(t, err)

	differs := false
	for i := range a {
		assert.Equal(t, a[i].CoverImageURL, b[i].CoverImageURL)
		assert.Equal(t, CoverImageURL(i), a[i].CoverImageURL)
		if a[i].ISBN != b[i].ISBN || a[i].Title != b[i].Title {
			differs = true
		}
	}
	assert.True(t, differs, "different seeds should produce different books")
	assert.Equal(t, CoverImageURL(3), strings.Replace(CoverImageURL(11), "Book+11", "Book+3", 1))
}

func TestGenerate_Invariants(t *testing.T) {
	books, err := Generate(locale.Default(), Params{StartIndex: 0, Count: 300, Locale: locale.French, Seed: 5, AvgLikes: 4, AvgReviews: 3})
	require.NoError(t, err)

	for _, b := range books {
		assert.Regexp(t, `^978-\d-\d{2}-\d{5}-\d$`, b.ISBN)
		assert.GreaterOrEqual(t, len(b.Authors), 1)
		assert.LessOrEqual(t, len(b.Authors), 3)
		assert.GreaterOrEqual(t, b.Likes, 0)
		assert.LessOrEqual(t, b.Likes, 8)
		assert.LessOrEqual(t, len(b.Reviews), 6)
		parts := strings.Split(b.Title, " ")
		assert.GreaterOrEqual(t, len(parts), 1)
		assert.LessOrEqual(t, len(parts), 3)
		for _, r := range b.Reviews {
			assert.GreaterOrEqual(t, r.Rating, 1.0)
			assert.LessOrEqual(t, r.Rating, 5.0)
			assert.Equal(t, r.Rating, math.Round(r.Rating*10)/10)
		}
	}
}

func TestGenerate_LocaleIsolation(t *testing.T) {
	words, err := locale.Default().Lookup(locale.German)
	require.NoError(t, err)

	set := func(words ...[]string) map[string]bool {
		m := make(map[string]bool)
		for _, list := range words {
			for _, w := range list {
				m[w] = true
			}
		}
		return m
	}
	titleWords := set(words.TitleWords)
	firstNames := set(words.FirstNames)
	lastNames := set(words.LastNames)
	initials := set(words.MiddleInitials)
	publishers := set(words.Publishers)
	reviewTexts := set(words.ReviewTexts)

	books, err := Generate(locale.Default(), Params{StartIndex: 0, Count: 200, Locale: locale.German, Seed: 99, AvgLikes: 1, AvgReviews: 2})
	require.NoError(t, err)

	for _, b := range books {
		for _, w := range strings.Split(b.Title, " ") {
			assert.True(t, titleWords[w], "title word %q", w)
		}
		for _, a := range b.Authors {
			parts := strings.Split(a, " ")
			require.Contains(t, []int{2, 3}, len(parts), a)
			assert.True(t, firstNames[parts[0]], "first name %q", parts[0])
			assert.True(t, lastNames[parts[len(parts)-1]], "last name %q", parts[len(parts)-1])
			if len(parts) == 3 {
				assert.True(t, initials[strings.TrimSuffix(parts[1], ".")], "initial %q", parts[1])
			}
		}
		assert.True(t, publishers[b.Publisher], "publisher %q", b.Publisher)
		for _, r := range b.Reviews {
			assert.True(t, reviewTexts[r.Text], "review %q", r.Text)
			parts := strings.Split(r.Author, " ")
			require.Len(t, parts, 2)
			assert.True(t, firstNames[parts[0]])
			assert.True(t, lastNames[parts[1]])
		}
	}
}

func TestGenerate_JapaneseNeverHasInitials(t *testing.T) {
	books, err := Generate(locale.Default(), Params{StartIndex: 0, Count: 200, Locale: locale.Japanese, Seed: 3})
	require.NoError(t, err)
	for _, b := range books {
		for _, a := range b.Authors {
			assert.NotContains(t, a, ".")
			assert.Len(t, strings.Split(a, " "), 2)
		}
	}
}

func TestGenerate_InvalidArguments(t *testing.T) {
	testCases := []struct {
		name string
		mut  func(*Params)
	}{
		{"negative count", func(p *Params) { p.Count = -1 }},
		{"negative start", func(p *Params) { p.StartIndex = -5 }},
		{"range overflows index space", func(p *Params) { p.StartIndex = math.MaxInt32; p.Count = 2 }},
		{"negative likes", func(p *Params) { p.AvgLikes = -0.5 }},
		{"NaN reviews", func(p *Params) { p.AvgReviews = math.NaN() }},
		{"infinite likes", func(p *Params) { p.AvgLikes = math.Inf(1) }},
		{"likes overflow counts", func(p *Params) { p.AvgLikes = 1e300 }},
		{"reviews overflow counts", func(p *Params) { p.AvgReviews = 1e300 }},
		{"likes just past the limit", func(p *Params) { p.AvgLikes = math.MaxInt32/2 + 1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := englishParams(0, 3)
			tc.mut(&p)
			books, err := Generate(locale.Default(), p)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "got %v", err)
			assert.Nil(t, books)
		})
	}
}

func TestGenerate_LargestAverage(t *testing.T) {
	p := englishParams(0, 20)
	p.AvgLikes = math.MaxInt32 / 2
	books, err := Generate(locale.Default(), p)
	require.NoError(t, err)
	for _, b := range books {
		assert.GreaterOrEqual(t, b.Likes, 0)
		assert.LessOrEqual(t, b.Likes, math.MaxInt32)
	}
}

func TestGenerate_LastIndex(t *testing.T) {
	books, err := Generate(locale.Default(), englishParams(math.MaxInt32, 1))
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, math.MaxInt32, books[0].Index)
}

func TestGenerate_UnregisteredLocale(t *testing.T) {
	table, err := locale.New(map[locale.Locale]locale.Data{})
	require.NoError(t, err)

	_, err = Generate(table, englishParams(0, 1))
	assert.True(t, errors.Is(err, locale.ErrConfiguration))
}

func TestCombineSeed_Wraps(t *testing.T) {
	assert.Equal(t, int32(42*31+3*17), CombineSeed(42, 3))
	assert.Equal(t, int32(-2147483594), CombineSeed(math.MaxInt32, 5))

	books, err := Generate(locale.Default(), Params{StartIndex: 5, Count: 1, Locale: locale.EnglishUS, Seed: math.MaxInt32, AvgLikes: 2, AvgReviews: 1})
	require.NoError(t, err)
	assert.Equal(t, "978-0-33-74949-2", books[0].ISBN)
	assert.Equal(t, "Noble", books[0].Title)
	assert.Equal(t, []string{"Betty Gonzalez"}, books[0].Authors)
	assert.Equal(t, "Hachette", books[0].Publisher)
}

func TestDrawCount(t *testing.T) {
	t.Run("zero average consumes nothing", func(t *testing.T) {
		s := random.New(8)
		assert.Equal(t, 0, drawCount(s, 0))
		assert.Equal(t, random.New(8).Next(), s.Next())
	})

	t.Run("fractional average consumes one draw", func(t *testing.T) {
		s := random.New(8)
		ref := random.New(8)
		want := 0
		if ref.Float64() < 0.5 {
			want = 1
		}
		assert.Equal(t, want, drawCount(s, 0.5))
		assert.Equal(t, ref.Next(), s.Next())
	})

	t.Run("average of one or more scales a single draw", func(t *testing.T) {
		s := random.New(8)
		ref := random.New(8)
		want := int(math.RoundToEven(ref.Float64() * 10 * 2))
		assert.Equal(t, want, drawCount(s, 10))
		assert.Equal(t, ref.Next(), s.Next())
	})
}

func TestRoundTenths_HalfToEven(t *testing.T) {
	assert.Equal(t, 1.2, roundTenths(1.25))
	assert.Equal(t, 1.4, roundTenths(1.35))
	assert.Equal(t, 2.4, roundTenths(2.45))
	assert.Equal(t, 3.8, roundTenths(3.75))
	assert.Equal(t, 5.0, roundTenths(4.99))
	assert.Equal(t, 1.0, roundTenths(1.0))
}

func TestGenerateBatches(t *testing.T) {
	p := Params{StartIndex: 3, Count: 23, Locale: locale.Spanish, Seed: 4, AvgLikes: 2, AvgReviews: 1}
	want, err := Generate(locale.Default(), p)
	require.NoError(t, err)

	var (
		got   []Book
		sizes []int
	)
	err = GenerateBatches(context.Background(), locale.Default(), p, 10, func(books []Book) error {
		sizes = append(sizes, len(books))
		got = append(got, books...)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 10, 3}, sizes)
	assert.Equal(t, want, got)
}

func TestGenerateBatches_Errors(t *testing.T) {
	noop := func([]Book) error { return nil }

	err := GenerateBatches(context.Background(), locale.Default(), englishParams(0, 5), 0, noop)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = GenerateBatches(context.Background(), locale.Default(), englishParams(0, -5), 10, noop)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = GenerateBatches(ctx, locale.Default(), englishParams(0, 5), 10, noop)
	assert.ErrorIs(t, err, context.Canceled)

	stop := errors.New("stop")
	calls := 0
	err = GenerateBatches(context.Background(), locale.Default(), englishParams(0, 50), 10, func([]Book) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
