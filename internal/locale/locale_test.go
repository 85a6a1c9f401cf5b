package locale

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input string
		want  Locale
	}{
		{"EnglishUS", EnglishUS},
		{"german", German},
		{"en-US", EnglishUS},
		{"en", EnglishUS},
		{"de-DE", German},
		{"de-AT", German},
		{"ja", Japanese},
		{"ja-JP", Japanese},
		{"fr-CA", French},
		{"es-ES", Spanish},
		{" es ", Spanish},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, input := range []string{"", "ko-KR", "!!", "Klingon"} {
		_, err := Parse(input)
		assert.True(t, errors.Is(err, ErrUnknownLocale), "input %q", input)
	}
}

func TestNegotiate(t *testing.T) {
	t.Run("prefers first supported", func(t *testing.T) {
		assert.Equal(t, German, Negotiate("de-CH,de;q=0.9,en;q=0.8", EnglishUS))
	})

	t.Run("honours quality values", func(t *testing.T) {
		assert.Equal(t, French, Negotiate("fr;q=0.9,ko;q=0.1", EnglishUS))
	})

	t.Run("empty header falls back", func(t *testing.T) {
		assert.Equal(t, Spanish, Negotiate("", Spanish))
	})

	t.Run("unsupported language falls back", func(t *testing.T) {
		assert.Equal(t, Japanese, Negotiate("ko-KR", Japanese))
	})
}

func TestLocale_StringAndTag(t *testing.T) {
	assert.Equal(t, "Japanese", Japanese.String())
	assert.Equal(t, "ja-JP", Japanese.Tag())
	assert.Equal(t, "Locale(42)", Locale(42).String())
	assert.Empty(t, Locale(-1).Tag())
}

func TestLocale_JSON(t *testing.T) {
	type payload struct {
		Locale Locale `json:"locale"`
	}

	data, err := json.Marshal(payload{Locale: French})
	require.NoError(t, err)
	assert.JSONEq(t, `{"locale":"fr-FR"}`, string(data))

	var decoded payload
	require.NoError(t, json.Unmarshal([]byte(`{"locale":"es"}`), &decoded))
	assert.Equal(t, Spanish, decoded.Locale)

	_, err = json.Marshal(payload{Locale: Locale(9)})
	assert.Error(t, err)
}

func TestAll(t *testing.T) {
	assert.Equal(t, []Locale{EnglishUS, German, Japanese, French, Spanish}, All())
}
