package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Limits enforced by the value objects.
const (
	MaxContentLength   = 10000
	MaxRecordDuration  = 3600.0
	MinScore, MaxScore = 0, 100
)

// ReadingTextID identifies a reading text.
type ReadingTextID struct{ value string }

// NewReadingTextID validates that id is not empty.
func NewReadingTextID(id string) (ReadingTextID, error) {
	if id == "" {
		return ReadingTextID{}, NewValidationError("reading_text_id", "cannot be empty")
	}
	return ReadingTextID{value: id}, nil
}

func (v ReadingTextID) String() string { return v.value }

// ReadingTextContent is the passage a user reads aloud.
type ReadingTextContent struct{ value string }

// NewReadingTextContent validates that content is non-empty and at most
// MaxContentLength characters long. Characters are Unicode code points, so
// text outside the Basic Multilingual Plane (emoji, for one) counts each
// character once rather than as a UTF-16 surrogate pair.
func NewReadingTextContent(content string) (ReadingTextContent, error) {
	if content == "" {
		return ReadingTextContent{}, NewValidationError("content", "cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return ReadingTextContent{}, NewValidationError("content", "cannot be longer than 10000 characters")
	}
	return ReadingTextContent{value: content}, nil
}

func (v ReadingTextContent) String() string { return v.value }

// Difficulty grades how hard a reading text is.
type Difficulty string

// Difficulty values.
const (
	DifficultyBeginner     Difficulty = "BEGINNER"
	DifficultyIntermediate Difficulty = "INTERMEDIATE"
	DifficultyAdvanced     Difficulty = "ADVANCED"
)

// IsValid reports whether d is one of the known difficulties.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

func (d Difficulty) String() string { return string(d) }

// ParseDifficulty converts raw into a Difficulty.
func ParseDifficulty(raw string) (Difficulty, error) {
	d := Difficulty(raw)
	if !d.IsValid() {
		return "", NewValidationError("difficulty", "invalid difficulty "+strconv.Quote(raw))
	}
	return d, nil
}

// Category classifies the kind of passage.
type Category string

// Category values.
const (
	CategoryStory    Category = "STORY"
	CategoryNews     Category = "NEWS"
	CategoryPoem     Category = "POEM"
	CategoryEssay    Category = "ESSAY"
	CategoryDialogue Category = "DIALOGUE"
)

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryStory, CategoryNews, CategoryPoem, CategoryEssay, CategoryDialogue:
		return true
	default:
		return false
	}
}

func (c Category) String() string { return string(c) }

// ParseCategory converts raw into a Category.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.IsValid() {
		return "", NewValidationError("category", "invalid category "+strconv.Quote(raw))
	}
	return c, nil
}

// ReadingRecordID identifies a reading record.
type ReadingRecordID struct{ value string }

// NewReadingRecordID validates that id is not empty.
func NewReadingRecordID(id string) (ReadingRecordID, error) {
	if id == "" {
		return ReadingRecordID{}, NewValidationError("reading_record_id", "cannot be empty")
	}
	return ReadingRecordID{value: id}, nil
}

func (v ReadingRecordID) String() string { return v.value }

// AudioURL points at a recording served over HTTPS.
type AudioURL struct{ value string }

// NewAudioURL validates that raw is non-empty and uses the https scheme.
func NewAudioURL(raw string) (AudioURL, error) {
	if raw == "" {
		return AudioURL{}, NewValidationError("audio_url", "cannot be empty")
	}
	if !strings.HasPrefix(raw, "https://") {
		return AudioURL{}, NewValidationError("audio_url", "must be a valid HTTPS URL")
	}
	return AudioURL{value: raw}, nil
}

func (v AudioURL) String() string { return v.value }

// RecordDuration is the length of a recording in seconds.
type RecordDuration struct{ seconds float64 }

// NewRecordDuration validates 0 <= seconds <= MaxRecordDuration.
func NewRecordDuration(seconds float64) (RecordDuration, error) {
	if math.IsNaN(seconds) {
		return RecordDuration{}, NewValidationError("duration", "must be a number")
	}
	if seconds < 0 {
		return RecordDuration{}, NewValidationError("duration", "cannot be negative")
	}
	if seconds > MaxRecordDuration {
		return RecordDuration{}, NewValidationError("duration", "cannot be longer than 1 hour")
	}
	return RecordDuration{seconds: seconds}, nil
}

// Seconds returns the duration in seconds.
func (v RecordDuration) Seconds() float64 { return v.seconds }

// Score is a reading score between MinScore and MaxScore inclusive.
type Score struct{ value int }

// NewScore validates MinScore <= value <= MaxScore.
func NewScore(value int) (Score, error) {
	if value < MinScore {
		return Score{}, NewValidationError("score", "cannot be negative")
	}
	if value > MaxScore {
		return Score{}, NewValidationError("score", "cannot be greater than 100")
	}
	return Score{value: value}, nil
}

// Int returns the score as an int.
func (v Score) Int() int { return v.value }
