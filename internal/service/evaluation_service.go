package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// EvaluateAudioInput is a score and feedback for an audio file, given by UserID.
type EvaluateAudioInput struct {
	AudioFileID string
	UserID      string
	Score       int
	Feedback    string
}

// EvaluationService records evaluations of uploaded recordings.
type EvaluationService interface {
	// EvaluateAudio fails with ErrNotOwned unless UserID owns the audio file.
	EvaluateAudio(ctx context.Context, in EvaluateAudioInput) (domain.AudioEvaluation, error)
	ListEvaluations(ctx context.Context, audioFileID, userID string) ([]domain.AudioEvaluation, error)
	ListUserEvaluations(ctx context.Context, userID string) ([]domain.AudioEvaluation, error)
}

type evaluationServiceImpl struct {
	files       store.AudioFileStore
	evaluations store.AudioEvaluationStore
	logger      *slog.Logger
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(
	files store.AudioFileStore,
	evaluations store.AudioEvaluationStore,
	log *slog.Logger,
) (EvaluationService, error) {
	if files == nil {
		return nil, domain.NewValidationError("files", "cannot be nil")
	}
	if evaluations == nil {
		return nil, domain.NewValidationError("evaluations", "cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &evaluationServiceImpl{
		files:       files,
		evaluations: evaluations,
		logger:      log.With(slog.String("component", "evaluation_service")),
	}, nil
}

func (s *evaluationServiceImpl) EvaluateAudio(
	ctx context.Context,
	in EvaluateAudioInput,
) (domain.AudioEvaluation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.ownedFile(ctx, in.AudioFileID, in.UserID, "EvaluateAudio"); err != nil {
		return domain.AudioEvaluation{}, err
	}

	evaluation, err := domain.NewAudioEvaluation(domain.AudioEvaluationParams{
		ID:          uuid.NewString(),
		AudioFileID: in.AudioFileID,
		UserID:      in.UserID,
		Score:       in.Score,
		Feedback:    in.Feedback,
	})
	if err != nil {
		return domain.AudioEvaluation{}, err
	}

	if err := s.evaluations.Save(ctx, evaluation); err != nil {
		log.Error("failed to save evaluation",
			slog.String("audio_file_id", in.AudioFileID),
			slog.String("error", err.Error()))
		return domain.AudioEvaluation{}, fmt.Errorf("%w: %w", ErrEvaluationSaveFailed, err)
	}

	log.Info("audio evaluated",
		slog.String("audio_evaluation_id", evaluation.ID()),
		slog.String("audio_file_id", in.AudioFileID),
		slog.Int("score", evaluation.Score()))
	return evaluation, nil
}

func (s *evaluationServiceImpl) ListEvaluations(
	ctx context.Context,
	audioFileID, userID string,
) ([]domain.AudioEvaluation, error) {
	if _, err := s.ownedFile(ctx, audioFileID, userID, "ListEvaluations"); err != nil {
		return nil, err
	}
	evaluations, err := s.evaluations.ListByAudioFileID(ctx, audioFileID)
	if err != nil {
		return nil, NewServiceError("evaluation", "ListEvaluations", "failed to list", err)
	}
	return evaluations, nil
}

func (s *evaluationServiceImpl) ListUserEvaluations(
	ctx context.Context,
	userID string,
) ([]domain.AudioEvaluation, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	evaluations, err := s.evaluations.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewServiceError("evaluation", "ListUserEvaluations", "failed to list", err)
	}
	return evaluations, nil
}

func (s *evaluationServiceImpl) ownedFile(
	ctx context.Context,
	audioFileID, userID, operation string,
) (domain.AudioFile, error) {
	if userID == "" {
		return domain.AudioFile{}, ErrNotAuthenticated
	}
	if audioFileID == "" {
		return domain.AudioFile{}, domain.NewValidationError("audio_file_id", "cannot be empty")
	}
	file, err := s.files.GetByID(ctx, audioFileID)
	if err != nil {
		return domain.AudioFile{}, notFound(err, ErrAudioFileNotFound, "evaluation", operation)
	}
	if !file.IsOwnedBy(userID) {
		logger.FromContextOrDefault(ctx, s.logger).Warn("evaluation denied for non-owner",
			slog.String("audio_file_id", audioFileID),
			slog.String("user_id", userID))
		return domain.AudioFile{}, ErrNotOwned
	}
	return file, nil
}
