package domain

import "time"

// ReadingRecord is a scored read-aloud attempt of a ReadingText.
type ReadingRecord struct {
	id            ReadingRecordID
	readingTextID ReadingTextID
	audioURL      AudioURL
	duration      RecordDuration
	score         Score
	createdAt     time.Time
	updatedAt     time.Time
}

// ReadingRecordParams carries the raw fields for NewReadingRecord.
type ReadingRecordParams struct {
	ID            string
	ReadingTextID string
	AudioURL      string
	Duration      float64
	Score         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewReadingRecord validates p and returns a ReadingRecord.
func NewReadingRecord(p ReadingRecordParams) (ReadingRecord, error) {
	id, err := NewReadingRecordID(p.ID)
	if err != nil {
		return ReadingRecord{}, err
	}
	textID, err := NewReadingTextID(p.ReadingTextID)
	if err != nil {
		return ReadingRecord{}, err
	}
	audioURL, err := NewAudioURL(p.AudioURL)
	if err != nil {
		return ReadingRecord{}, err
	}
	duration, err := NewRecordDuration(p.Duration)
	if err != nil {
		return ReadingRecord{}, err
	}
	score, err := NewScore(p.Score)
	if err != nil {
		return ReadingRecord{}, err
	}

	createdAt, updatedAt := stampTimes(p.CreatedAt, p.UpdatedAt)
	return ReadingRecord{
		id:            id,
		readingTextID: textID,
		audioURL:      audioURL,
		duration:      duration,
		score:         score,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (r ReadingRecord) ID() string            { return r.id.String() }
func (r ReadingRecord) ReadingTextID() string { return r.readingTextID.String() }
func (r ReadingRecord) AudioURL() string      { return r.audioURL.String() }
func (r ReadingRecord) Duration() float64     { return r.duration.Seconds() }
func (r ReadingRecord) Score() int            { return r.score.Int() }
func (r ReadingRecord) CreatedAt() time.Time  { return r.createdAt }
func (r ReadingRecord) UpdatedAt() time.Time  { return r.updatedAt }

// UpdateScore returns a copy of r with the new score and a later UpdatedAt.
func (r ReadingRecord) UpdateScore(score int) (ReadingRecord, error) {
	s, err := NewScore(score)
	if err != nil {
		return ReadingRecord{}, err
	}
	next := r
	next.score = s
	next.updatedAt = nextUpdatedAt(r.updatedAt)
	return next, nil
}
