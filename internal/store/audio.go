package store

import (
	"context"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
)

// AudioFileStore defines persistence for audio file metadata. The audio
// bytes themselves are kept in object storage.
type AudioFileStore interface {
	// GetByID returns ErrAudioFileNotFound if no file has the id.
	GetByID(ctx context.Context, id string) (domain.AudioFile, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.AudioFile, error)
	ListByReadingTextID(ctx context.Context, readingTextID string) ([]domain.AudioFile, error)
	Save(ctx context.Context, file domain.AudioFile) error
	Delete(ctx context.Context, id string) error
}

// AudioEvaluationStore defines persistence for audio evaluations.
type AudioEvaluationStore interface {
	GetByID(ctx context.Context, id string) (domain.AudioEvaluation, error)
	ListByAudioFileID(ctx context.Context, audioFileID string) ([]domain.AudioEvaluation, error)
	ListByUserID(ctx context.Context, userID string) ([]domain.AudioEvaluation, error)
	Save(ctx context.Context, evaluation domain.AudioEvaluation) error
	Delete(ctx context.Context, id string) error
}
