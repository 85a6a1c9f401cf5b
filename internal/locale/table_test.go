package locale

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_AllLocalesRegistered(t *testing.T) {
	table := Builtin()
	assert.Equal(t, All(), table.Locales())

	for _, l := range All() {
		data, err := table.Lookup(l)
		require.NoError(t, err, l.String())
		assert.NotEmpty(t, data.FirstNames)
		assert.NotEmpty(t, data.LastNames)
		assert.NotEmpty(t, data.TitleWords)
		assert.NotEmpty(t, data.Publishers)
		assert.NotEmpty(t, data.ReviewTexts)
	}
}

func TestBuiltin_JapaneseHasNoMiddleInitials(t *testing.T) {
	data, err := Builtin().Lookup(Japanese)
	require.NoError(t, err)
	assert.Empty(t, data.MiddleInitials)
}

func TestBuiltin_ListSizes(t *testing.T) {
	data, err := Builtin().Lookup(EnglishUS)
	require.NoError(t, err)
	assert.Len(t, data.FirstNames, 30)
	assert.Len(t, data.LastNames, 30)
	assert.Len(t, data.MiddleInitials, 18)
	assert.Len(t, data.TitleWords, 68)
	assert.Len(t, data.Publishers, 20)
	assert.Len(t, data.ReviewTexts, 10)
}

func TestLookup_Unregistered(t *testing.T) {
	table, err := New(map[Locale]Data{EnglishUS: englishUS})
	require.NoError(t, err)

	_, err = table.Lookup(German)
	assert.True(t, errors.Is(err, ErrConfiguration))

	_, err = table.Lookup(Locale(17))
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestNew_RejectsEmptyLists(t *testing.T) {
	broken := englishUS
	broken.Publishers = nil

	_, err := New(map[Locale]Data{EnglishUS: broken})
	assert.True(t, errors.Is(err, ErrConfiguration))
	assert.Contains(t, err.Error(), "publishers")
}

func TestNew_AllowsEmptyMiddleInitials(t *testing.T) {
	data := englishUS
	data.MiddleInitials = nil

	_, err := New(map[Locale]Data{EnglishUS: data})
	assert.NoError(t, err)
}

func TestDefault_SingleInstance(t *testing.T) {
	var wg sync.WaitGroup
	tables := make([]*Table, 8)
	for i := range tables {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i] = Default()
		}(i)
	}
	wg.Wait()

	for _, table := range tables {
		assert.Same(t, tables[0], table)
	}
}

func TestTable_CallersCannotMutate(t *testing.T) {
	input := Data{
		FirstNames:  []string{"Ann"},
		LastNames:   []string{"Lee"},
		TitleWords:  []string{"Sea"},
		Publishers:  []string{"Acme"},
		ReviewTexts: []string{"Fine."},
	}
	table, err := New(map[Locale]Data{EnglishUS: input})
	require.NoError(t, err)

	input.FirstNames[0] = "changed"
	got, err := table.Lookup(EnglishUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann"}, got.FirstNames)

	got.TitleWords[0] = "changed"
	again, err := table.Lookup(EnglishUS)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sea"}, again.TitleWords)
}
