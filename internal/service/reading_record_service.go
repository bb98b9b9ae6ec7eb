package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
	"github.com/kami8ma8810/next-architecture-learning/internal/platform/logger"
	"github.com/kami8ma8810/next-architecture-learning/internal/store"
)

// CreateRecordInput carries the fields of a new reading record.
type CreateRecordInput struct {
	ReadingTextID string
	AudioURL      string
	Duration      float64
	Score         int
}

// ReadingRecordService manages scored read-aloud attempts.
type ReadingRecordService interface {
	// CreateRecord fails with ErrReadingTextNotFound when the text is missing.
	CreateRecord(ctx context.Context, in CreateRecordInput) (domain.ReadingRecord, error)
	GetRecord(ctx context.Context, id string) (domain.ReadingRecord, error)
	ListRecordsForText(ctx context.Context, readingTextID string) ([]domain.ReadingRecord, error)
	UpdateRecordScore(ctx context.Context, id string, score int) (domain.ReadingRecord, error)
	DeleteRecord(ctx context.Context, id string) error
}

type readingRecordServiceImpl struct {
	records store.ReadingRecordStore
	texts   store.ReadingTextStore
	logger  *slog.Logger
}

// NewReadingRecordService creates a new ReadingRecordService.
func NewReadingRecordService(
	records store.ReadingRecordStore,
	texts store.ReadingTextStore,
	log *slog.Logger,
) (ReadingRecordService, error) {
	if records == nil {
		return nil, domain.NewValidationError("records", "cannot be nil")
	}
	if texts == nil {
		return nil, domain.NewValidationError("texts", "cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &readingRecordServiceImpl{
		records: records,
		texts:   texts,
		logger:  log.With(slog.String("component", "reading_record_service")),
	}, nil
}

func (s *readingRecordServiceImpl) CreateRecord(
	ctx context.Context,
	in CreateRecordInput,
) (domain.ReadingRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := domain.NewReadingRecord(domain.ReadingRecordParams{
		ID:            uuid.NewString(),
		ReadingTextID: in.ReadingTextID,
		AudioURL:      in.AudioURL,
		Duration:      in.Duration,
		Score:         in.Score,
	})
	if err != nil {
		return domain.ReadingRecord{}, err
	}

	if _, err := s.texts.GetByID(ctx, record.ReadingTextID()); err != nil {
		return domain.ReadingRecord{}, notFound(err, ErrReadingTextNotFound, "reading record", "CreateRecord")
	}

	if err := s.records.Save(ctx, record); err != nil {
		log.Error("failed to save reading record", slog.String("error", err.Error()))
		return domain.ReadingRecord{}, NewServiceError("reading record", "CreateRecord", "failed to save", err)
	}

	log.Debug("reading record created",
		slog.String("reading_record_id", record.ID()),
		slog.String("reading_text_id", record.ReadingTextID()))
	return record, nil
}

func (s *readingRecordServiceImpl) GetRecord(ctx context.Context, id string) (domain.ReadingRecord, error) {
	if _, err := domain.NewReadingRecordID(id); err != nil {
		return domain.ReadingRecord{}, err
	}
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		return domain.ReadingRecord{}, notFound(err, ErrReadingRecordNotFound, "reading record", "GetRecord")
	}
	return record, nil
}

func (s *readingRecordServiceImpl) ListRecordsForText(
	ctx context.Context,
	readingTextID string,
) ([]domain.ReadingRecord, error) {
	if _, err := domain.NewReadingTextID(readingTextID); err != nil {
		return nil, err
	}
	records, err := s.records.ListByReadingTextID(ctx, readingTextID)
	if err != nil {
		return nil, NewServiceError("reading record", "ListRecordsForText", "failed to list", err)
	}
	return records, nil
}

func (s *readingRecordServiceImpl) UpdateRecordScore(
	ctx context.Context,
	id string,
	score int,
) (domain.ReadingRecord, error) {
	record, err := s.GetRecord(ctx, id)
	if err != nil {
		return domain.ReadingRecord{}, err
	}
	updated, err := record.UpdateScore(score)
	if err != nil {
		return domain.ReadingRecord{}, err
	}
	if err := s.records.Save(ctx, updated); err != nil {
		return domain.ReadingRecord{}, NewServiceError("reading record", "UpdateRecordScore", "failed to save", err)
	}
	return updated, nil
}

func (s *readingRecordServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if _, err := domain.NewReadingRecordID(id); err != nil {
		return err
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return notFound(err, ErrReadingRecordNotFound, "reading record", "DeleteRecord")
	}
	return nil
}
