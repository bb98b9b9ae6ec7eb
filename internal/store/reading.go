package store

import (
	"context"

	"github.com/kami8ma8810/next-architecture-learning/internal/domain"
)

// ReadingTextFilter narrows ReadingTextStore.List. Zero values mean "any".
type ReadingTextFilter struct {
	Difficulty domain.Difficulty
	Category   domain.Category
	Limit      uint64
	Offset     uint64
}

// ReadingTextStore defines persistence for reading texts.
type ReadingTextStore interface {
	// GetByID returns ErrReadingTextNotFound if no text has the id.
	GetByID(ctx context.Context, id string) (domain.ReadingText, error)

	// List returns texts newest first.
	List(ctx context.Context, filter ReadingTextFilter) ([]domain.ReadingText, error)

	// Save inserts the text or replaces an existing one with the same id.
	Save(ctx context.Context, text domain.ReadingText) error

	// Delete returns ErrReadingTextNotFound if no text has the id.
	Delete(ctx context.Context, id string) error
}

// ReadingRecordStore defines persistence for reading records.
type ReadingRecordStore interface {
	GetByID(ctx context.Context, id string) (domain.ReadingRecord, error)
	List(ctx context.Context) ([]domain.ReadingRecord, error)
	ListByReadingTextID(ctx context.Context, readingTextID string) ([]domain.ReadingRecord, error)
	Save(ctx context.Context, record domain.ReadingRecord) error
	Delete(ctx context.Context, id string) error
}
