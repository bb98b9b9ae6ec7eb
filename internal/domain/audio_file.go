package domain

import (
	"math"
	"strings"
	"time"
)

// AudioMIMEPrefix is the media type prefix every AudioFile must carry.
const AudioMIMEPrefix = "audio/"

// AudioFile is the metadata of an uploaded recording. The object itself lives
// in object storage under FilePath.
type AudioFile struct {
	id            string
	userID        string
	readingTextID string
	filePath      string
	publicURL     string
	duration      float64
	fileSize      int64
	mimeType      string
	createdAt     time.Time
	updatedAt     time.Time
}

// AudioFileParams carries the raw fields for NewAudioFile. PublicURL is
// optional.
type AudioFileParams struct {
	ID            string
	UserID        string
	ReadingTextID string
	FilePath      string
	PublicURL     string
	Duration      float64
	FileSize      int64
	MimeType      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewAudioFile validates p and returns an AudioFile.
func NewAudioFile(p AudioFileParams) (AudioFile, error) {
	createdAt, updatedAt := stampTimes(p.CreatedAt, p.UpdatedAt)
	f := AudioFile{
		id:            p.ID,
		userID:        p.UserID,
		readingTextID: p.ReadingTextID,
		filePath:      p.FilePath,
		publicURL:     p.PublicURL,
		duration:      p.Duration,
		fileSize:      p.FileSize,
		mimeType:      p.MimeType,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
	if err := f.Validate(); err != nil {
		return AudioFile{}, err
	}
	return f, nil
}

// ValidateAudioDuration checks the duration of an uploaded recording: a
// finite number of seconds, zero or greater. Unlike RecordDuration there is no
// upper bound.
func ValidateAudioDuration(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return NewValidationError("duration", "must be a finite number")
	}
	if seconds < 0 {
		return NewValidationError("duration", "must be zero or greater")
	}
	return nil
}

// Validate checks the AudioFile invariants.
func (f AudioFile) Validate() error {
	switch {
	case f.id == "":
		return NewValidationError("id", "cannot be empty")
	case f.userID == "":
		return NewValidationError("user_id", "cannot be empty")
	case f.readingTextID == "":
		return NewValidationError("reading_text_id", "cannot be empty")
	case f.filePath == "":
		return NewValidationError("file_path", "cannot be empty")
	case f.fileSize <= 0:
		return NewValidationError("file_size", "must be greater than zero")
	case !strings.HasPrefix(f.mimeType, AudioMIMEPrefix):
		return NewValidationError("mime_type", "only audio files are accepted")
	}
	return ValidateAudioDuration(f.duration)
}

func (f AudioFile) ID() string            { return f.id }
func (f AudioFile) UserID() string        { return f.userID }
func (f AudioFile) ReadingTextID() string { return f.readingTextID }
func (f AudioFile) FilePath() string      { return f.filePath }
func (f AudioFile) PublicURL() string     { return f.publicURL }
func (f AudioFile) Duration() float64     { return f.duration }
func (f AudioFile) FileSize() int64       { return f.fileSize }
func (f AudioFile) MimeType() string      { return f.mimeType }
func (f AudioFile) CreatedAt() time.Time  { return f.createdAt }
func (f AudioFile) UpdatedAt() time.Time  { return f.updatedAt }

// IsOwnedBy reports whether userID uploaded the file.
func (f AudioFile) IsOwnedBy(userID string) bool {
	return userID != "" && f.userID == userID
}
