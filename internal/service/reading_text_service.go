package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

const (
	// DefaultListLimit is used when a list request gives no limit.
	DefaultListLimit = 50

	// MaxListLimit caps list requests.
	MaxListLimit = 100
)

// CreateTextInput carries the fields of a new reading text.
type CreateTextInput struct {
	Content    string
	Difficulty string
	Category   string
}

// ReadingTextService manages the reading texts offered for practice.
type ReadingTextService interface {
	CreateText(ctx context.Context, in CreateTextInput) (domain.ReadingText, error)
	GetText(ctx context.Context, id string) (domain.ReadingText, error)

	// ListTexts returns texts newest first. The filter's limit is clamped to
	// MaxListLimit.
	ListTexts(ctx context.Context, filter store.ReadingTextFilter) ([]domain.ReadingText, error)

	UpdateTextContent(ctx context.Context, id, content string) (domain.ReadingText, error)
	DeleteText(ctx context.Context, id string) error
}

type readingTextServiceImpl struct {
	texts  store.ReadingTextStore
	logger *slog.Logger
}

// NewReadingTextService creates a new ReadingTextService.
func NewReadingTextService(texts store.ReadingTextStore, log *slog.Logger) (ReadingTextService, error) {
	if texts == nil {
		return nil, domain.NewValidationError("texts", "cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &readingTextServiceImpl{
		texts:  texts,
		logger: log.With(slog.String("component", "reading_text_service")),
	}, nil
}

func (s *readingTextServiceImpl) CreateText(ctx context.Context, in CreateTextInput) (domain.ReadingText, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	text, err := domain.NewReadingText(domain.ReadingTextParams{
		ID:         uuid.NewString(),
		Content:    in.Content,
		Difficulty: in.Difficulty,
		Category:   in.Category,
	})
	if err != nil {
		return domain.ReadingText{}, err
	}

	if err := s.texts.Save(ctx, text); err != nil {
		log.Error("failed to save reading text", slog.String("error", err.Error()))
		return domain.ReadingText{}, NewServiceError("reading text", "CreateText", "failed to save", err)
	}

	log.Debug("reading text created", slog.String("reading_text_id", text.ID()))
	return text, nil
}

func (s *readingTextServiceImpl) GetText(ctx context.Context, id string) (domain.ReadingText, error) {
	if _, err := domain.NewReadingTextID(id); err != nil {
		return domain.ReadingText{}, err
	}
	text, err := s.texts.GetByID(ctx, id)
	if err != nil {
		return domain.ReadingText{}, notFound(err, ErrReadingTextNotFound, "reading text", "GetText")
	}
	return text, nil
}

func (s *readingTextServiceImpl) ListTexts(
	ctx context.Context,
	filter store.ReadingTextFilter,
) ([]domain.ReadingText, error) {
	if filter.Difficulty != "" && !filter.Difficulty.IsValid() {
		return nil, domain.NewValidationError("difficulty", "must be one of BEGINNER, INTERMEDIATE, ADVANCED")
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "must be one of STORY, NEWS, POEM, ESSAY, DIALOGUE")
	}
	filter.Limit = clampLimit(filter.Limit)

	texts, err := s.texts.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("reading text", "ListTexts", "failed to list", err)
	}
	return texts, nil
}

func (s *readingTextServiceImpl) UpdateTextContent(
	ctx context.Context,
	id, content string,
) (domain.ReadingText, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	text, err := s.GetText(ctx, id)
	if err != nil {
		return domain.ReadingText{}, err
	}
	updated, err := text.UpdateContent(content)
	if err != nil {
		return domain.ReadingText{}, err
	}
	if err := s.texts.Save(ctx, updated); err != nil {
		log.Error("failed to save reading text",
			slog.String("reading_text_id", id),
			slog.String("error", err.Error()))
		return domain.ReadingText{}, NewServiceError("reading text", "UpdateTextContent", "failed to save", err)
	}
	return updated, nil
}

func (s *readingTextServiceImpl) DeleteText(ctx context.Context, id string) error {
	if _, err := domain.NewReadingTextID(id); err != nil {
		return err
	}
	if err := s.texts.Delete(ctx, id); err != nil {
		return notFound(err, ErrReadingTextNotFound, "reading text", "DeleteText")
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("reading text deleted",
		slog.String("reading_text_id", id))
	return nil
}

func clampLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
