package domain

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"typical", 42.5, false},
		{"one hour", 3600, false},
		{"negative", -0.001, true},
		{"over one hour", 3600.5, true},
		{"not a number", math.NaN(), true},
		{"positive infinity", math.Inf(1), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := NewRecordDuration(tc.seconds)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.seconds, d.Seconds())
		})
	}
}

func TestNewScore(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, 50, 99, 100} {
		s, err := NewScore(v)
		require.NoError(t, err, "score %d", v)
		assert.Equal(t, v, s.Int())
	}

	for _, v := range []int{-1, 101, -100, 1000} {
		_, err := NewScore(v)
		assert.ErrorIs(t, err, ErrValidation, "score %d", v)
	}
}

func TestNewReadingTextContent(t *testing.T) {
	t.Parallel()

	_, err := NewReadingTextContent("")
	assert.ErrorIs(t, err, ErrValidation)

	c, err := NewReadingTextContent(strings.Repeat("a", MaxContentLength))
	require.NoError(t, err)
	assert.Len(t, c.String(), MaxContentLength)

	_, err = NewReadingTextContent(strings.Repeat("a", MaxContentLength+1))
	assert.ErrorIs(t, err, ErrValidation)

	// Multibyte passages are measured in characters, not bytes.
	_, err = NewReadingTextContent(strings.Repeat("あ", MaxContentLength))
	assert.NoError(t, err)

	// Characters outside the BMP count once each.
	_, err = NewReadingTextContent(strings.Repeat("🎤", MaxContentLength))
	assert.NoError(t, err)
	_, err = NewReadingTextContent(strings.Repeat("🎤", MaxContentLength+1))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewAudioURL(t *testing.T) {
	t.Parallel()

	u, err := NewAudioURL("https://cdn.example.com/a.webm")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/a.webm", u.String())

	for _, raw := range []string{"", "http://cdn.example.com/a.webm", "ftp://x", "cdn.example.com/a.webm"} {
		_, err := NewAudioURL(raw)
		assert.ErrorIs(t, err, ErrValidation, raw)
	}
}

func TestIdentifiers(t *testing.T) {
	t.Parallel()

	_, err := NewReadingTextID("")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = NewReadingRecordID("")
	assert.ErrorIs(t, err, ErrValidation)

	id, err := NewReadingTextID("text-1")
	require.NoError(t, err)
	assert.Equal(t, "text-1", id.String())
}

func TestParseEnums(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"BEGINNER", "INTERMEDIATE", "ADVANCED"} {
		d, err := ParseDifficulty(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, d.String())
	}
	for _, raw := range []string{"STORY", "NEWS", "POEM", "ESSAY", "DIALOGUE"} {
		c, err := ParseCategory(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, c.String())
	}

	_, err := ParseDifficulty("beginner")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = ParseCategory("NOVEL")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	_, err := NewScore(-1)
	ve, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "score", ve.Field)
	assert.Equal(t, "score: cannot be negative", err.Error())

	_, ok = IsValidationError(errors.New("other"))
	assert.False(t, ok)
}
