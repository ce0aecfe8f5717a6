//go:build unit

package guide_test

import (
	"testing"
	"time"

	"tourbook/internal/domain/guide"

	"github.com/stretchr/testify/assert"
)

var testTime = time.Date(2025, 11, 20, 8, 0, 0, 0, time.UTC)

func TestParseLanguages(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "Malayalam, English, Hindi", []string{"Malayalam", "English", "Hindi"}},
		{"extra whitespace", "  Malayalam ,English  , Tamil", []string{"Malayalam", "English", "Tamil"}},
		{"empty segments dropped", "Malayalam,,  ,English", []string{"Malayalam", "English"}},
		{"single language", "Kannada", []string{"Kannada"}},
		{"empty input", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guide.ParseLanguages(tc.input))
		})
	}
}

func TestLanguagesRoundTrip(t *testing.T) {
	// save then load must be idempotent on the same input
	original := "Malayalam,  English ,Hindi,"
	parsed := guide.ParseLanguages(original)
	joined := guide.JoinLanguages(parsed)

	assert.Equal(t, "Malayalam, English, Hindi", joined)
	assert.Equal(t, parsed, guide.ParseLanguages(joined))
}

func TestNewGuideValidation(t *testing.T) {
	t.Run("name and email required", func(t *testing.T) {
		_, err := guide.NewGuide(guide.Draft{Email: "g@example.com"}, testTime)
		assert.ErrorIs(t, err, guide.ErrMissingName)

		_, err = guide.NewGuide(guide.Draft{Name: "Anish"}, testTime)
		assert.ErrorIs(t, err, guide.ErrMissingEmail)
	})

	t.Run("new guide starts active with normalized languages", func(t *testing.T) {
		g, err := guide.NewGuide(guide.Draft{
			Name:      "  Anish ",
			Email:     "anish@example.com",
			Languages: []string{" Malayalam", "", "English "},
		}, testTime)
		assert.NoError(t, err)
		assert.Equal(t, guide.StatusActive, g.Status())
		assert.Equal(t, "Anish", g.Name())
		assert.Equal(t, []string{"Malayalam", "English"}, g.Languages())
		assert.Equal(t, testTime, g.Joined())
	})
}
