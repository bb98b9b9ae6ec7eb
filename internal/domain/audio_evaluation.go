package domain

import (
	"strings"
	"time"
)

// AudioEvaluation is a score and written feedback given to an AudioFile.
type AudioEvaluation struct {
	id          string
	audioFileID string
	userID      string
	score       Score
	feedback    string
	createdAt   time.Time
	updatedAt   time.Time
}

// AudioEvaluationParams carries the raw fields for NewAudioEvaluation.
type AudioEvaluationParams struct {
	ID          string
	AudioFileID string
	UserID      string
	Score       int
	Feedback    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewAudioEvaluation validates p and returns an AudioEvaluation. Feedback is
// stored trimmed.
func NewAudioEvaluation(p AudioEvaluationParams) (AudioEvaluation, error) {
	if p.ID == "" {
		return AudioEvaluation{}, NewValidationError("id", "cannot be empty")
	}
	if p.AudioFileID == "" {
		return AudioEvaluation{}, NewValidationError("audio_file_id", "cannot be empty")
	}
	if p.UserID == "" {
		return AudioEvaluation{}, NewValidationError("user_id", "cannot be empty")
	}
	score, err := NewScore(p.Score)
	if err != nil {
		return AudioEvaluation{}, err
	}
	feedback := strings.TrimSpace(p.Feedback)
	if feedback == "" {
		return AudioEvaluation{}, NewValidationError("feedback", "cannot be empty")
	}

	createdAt, updatedAt := stampTimes(p.CreatedAt, p.UpdatedAt)
	return AudioEvaluation{
		id:          p.ID,
		audioFileID: p.AudioFileID,
		userID:      p.UserID,
		score:       score,
		feedback:    feedback,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (e AudioEvaluation) ID() string           { return e.id }
func (e AudioEvaluation) AudioFileID() string  { return e.audioFileID }
func (e AudioEvaluation) UserID() string       { return e.userID }
func (e AudioEvaluation) Score() int           { return e.score.Int() }
func (e AudioEvaluation) Feedback() string     { return e.feedback }
func (e AudioEvaluation) CreatedAt() time.Time { return e.createdAt }
func (e AudioEvaluation) UpdatedAt() time.Time { return e.updatedAt }
